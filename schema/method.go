package schema

const (
	MethodGetConstants     = "getConstants"
	MethodGetCloudURL      = "getCloudURL"
	MethodIsCloudAvailable = "isCloudAvailable"

	MethodWriteFile = "writeFile"
	MethodReadFile  = "readFile"
	MethodReadDir   = "readDir"
	MethodCreateDir = "createDir"
	MethodMoveDir   = "moveDir"
	MethodCopy      = "copy"
	MethodUnlink    = "unlink"
	MethodExist     = "exist"
	MethodStat      = "stat"
	MethodUpload    = "upload"
	MethodDownload  = "download"

	MethodKVSync        = "kvSync"
	MethodKVSetItem     = "kvSetItem"
	MethodKVGetItem     = "kvGetItem"
	MethodKVRemoveItem  = "kvRemoveItem"
	MethodKVGetAllItems = "kvGetAllItems"

	// host notifications
	MethodStartObserving = "startObserving"
	MethodStopObserving  = "stopObserving"
)

const (
	EventDocumentsStartGathering  = "onCloudDocumentsStartGathering"
	EventDocumentsFinishGathering = "onCloudDocumentsFinishGathering"
)
