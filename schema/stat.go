package schema

// Download status values reported by Stat.
const (
	DownloadStatusNotDownloaded = "notDownloaded"
	DownloadStatusCurrent       = "current"
	DownloadStatusDownloaded    = "downloaded"
)

// Stat describes a container file or folder.
type Stat struct {
	IsInCloud            bool   `json:"isInCloud"`
	ContainerDisplayName string `json:"containerDisplayName,omitempty"`
	IsDir                bool   `json:"isDir"`
	Size                 int64  `json:"size"`

	IsDownloading     bool   `json:"isDownloading"`
	HasCalledDownload bool   `json:"hasCalledDownload"`
	DownloadStatus    string `json:"downloadStatus,omitempty"`
	DownloadError     string `json:"downloadError,omitempty"`

	IsUploaded  bool   `json:"isUploaded"`
	IsUploading bool   `json:"isUploading"`
	UploadError string `json:"uploadError,omitempty"`

	HasUnresolvedConflicts bool `json:"hasUnresolvedConflicts"`

	ModifyTimestamp int64  `json:"modifyTimestamp,omitempty"`
	CreateTimestamp int64  `json:"createTimestamp,omitempty"`
	Name            string `json:"name,omitempty"`
	LocalizedName   string `json:"localizedName,omitempty"`
}
