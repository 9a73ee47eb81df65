package schema

// Gathering file types
const (
	GatheringUpload   = "upload"
	GatheringDownload = "download"
)

type (
	// GatheringData is the body of documents gathering events.
	GatheringData struct {
		Info   GatheringInfo   `json:"info"`
		Detail []GatheringFile `json:"detail"`
	}

	GatheringInfo struct {
		Added   []string `json:"added"`
		Changed []string `json:"changed"`
		Removed []string `json:"removed"`
	}

	GatheringFile struct {
		Type     string   `json:"type"`
		Path     string   `json:"path"`
		Progress *float64 `json:"progress"`
		IsDir    *bool    `json:"isDir"`
	}
)
