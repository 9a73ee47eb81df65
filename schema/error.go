package schema

// JSON-RPC error codes used for bridge rejections.
const (
	MethodNotFound = -32601
	HandlerFailed  = -32010
)

// Failure reasons reported by cloud store handlers.
const (
	ReasonContainerUnavailable = "ERR_CONTAINER_UNAVAILABLE"
	ReasonInvalidArgument      = "ERR_INVALID_ARGUMENT"
	ReasonInvalidPath          = "ERR_INVALID_PATH"

	ReasonFileExist    = "ERR_FILE_EXIST"
	ReasonFileNotExist = "ERR_FILE_NOT_EXIST"
	ReasonWriteFile    = "ERR_WRITE_FILE"
	ReasonReadFile     = "ERR_READ_FILE"

	ReasonDirNotExist = "ERR_DIR_NOT_EXIST"
	ReasonListFiles   = "ERR_LIST_FILES"
	ReasonCreateDir   = "ERR_CREATE_DIR"
	ReasonMoveDir     = "ERR_MOVE_DIR"

	ReasonDestExist   = "ERR_DEST_EXIST"
	ReasonCopy        = "ERR_COPY"
	ReasonUnlink      = "ERR_UNLINK"
	ReasonNotExist    = "ERR_NOT_EXIST"
	ReasonStat        = "ERR_STAT"
	ReasonCopyToCloud = "ERR_COPY_TO_CLOUD"
	ReasonDownload    = "ERR_DOWNLOAD"

	ReasonKVSync  = "ERR_KV_SYNC"
	ReasonKVStore = "ERR_KV_STORE"
)
