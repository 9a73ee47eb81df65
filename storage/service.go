package storage

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/afs"
	afsstorage "github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/cloudbridge/schema"
)

const (
	fileMode = os.FileMode(0644)
	dirMode  = os.ModeDir | os.FileMode(0755)
)

type (
	// Service performs document operations on a cloud container.
	Service struct {
		config *Config
		fs     afs.Service
	}

	// Config describes the container location.
	Config struct {
		// ContainerURL is the container root, any afs supported URL.
		ContainerURL string
		// ContainerName is reported as the display name.
		ContainerName string
		// LocalURL receives downloaded documents; empty keeps them in the container only.
		LocalURL string
		Options  []afsstorage.Option
	}
)

// ContainerURL returns container root URL
func (s *Service) ContainerURL() string {
	return s.config.ContainerURL
}

// ContainerPath returns the path part of the container URL.
func (s *Service) ContainerPath() string {
	if s.config.ContainerURL == "" {
		return ""
	}
	return url.Path(s.config.ContainerURL)
}

// Init creates the container folder when missing.
func (s *Service) Init(ctx context.Context) error {
	if s.config.ContainerURL == "" {
		return errContainerUnavailable
	}
	if err := s.ensureDir(ctx, s.config.ContainerURL); err != nil {
		return newError(schema.ReasonContainerUnavailable, s.config.ContainerURL, "failed to create container "+s.config.ContainerURL, err)
	}
	return nil
}

// Available returns true when the container is configured and exists.
func (s *Service) Available(ctx context.Context) bool {
	if s.config.ContainerURL == "" {
		return false
	}
	exists, _ := s.fs.Exists(ctx, s.config.ContainerURL, s.config.Options...)
	return exists
}

// WriteFile writes content to path, creating missing folders.
func (s *Service) WriteFile(ctx context.Context, location, content string, override bool) error {
	rel, err := s.relative(location)
	if err != nil {
		return err
	}
	URL := s.url(rel)
	if err = s.ensureDir(ctx, s.url(path.Dir(rel))); err != nil {
		return newError(schema.ReasonCreateDir, URL, "failed to create folder of "+URL, err)
	}
	if exists, _ := s.fs.Exists(ctx, URL, s.config.Options...); exists && !override {
		return newError(schema.ReasonFileExist, URL, "file "+URL+" already exists and override is false, so not create file", nil)
	}
	if err = s.fs.Upload(ctx, URL, fileMode, strings.NewReader(content), s.config.Options...); err != nil {
		return newError(schema.ReasonWriteFile, URL, "failed to write "+URL, err)
	}
	return nil
}

// ReadFile returns file content.
func (s *Service) ReadFile(ctx context.Context, location string) (string, error) {
	rel, err := s.relative(location)
	if err != nil {
		return "", err
	}
	URL := s.url(rel)
	if exists, _ := s.fs.Exists(ctx, URL, s.config.Options...); !exists {
		return "", newError(schema.ReasonFileNotExist, URL, "file "+URL+" not exists", nil)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL, s.config.Options...)
	if err != nil {
		return "", newError(schema.ReasonReadFile, URL, "failed to read "+URL, err)
	}
	return string(data), nil
}

// ReadDir returns paths of the folder direct children. A not yet downloaded
// document may be listed under its placeholder name, see RemoveDotExt.
func (s *Service) ReadDir(ctx context.Context, location string) ([]string, error) {
	rel, err := s.relative(location)
	if err != nil {
		return nil, err
	}
	URL := s.url(rel)
	if exists, _ := s.fs.Exists(ctx, URL, s.config.Options...); !exists {
		return nil, newError(schema.ReasonDirNotExist, URL, "dir "+URL+" not exist", nil)
	}
	objects, err := s.fs.List(ctx, URL, s.config.Options...)
	if err != nil {
		return nil, newError(schema.ReasonListFiles, URL, "failed to list "+URL, err)
	}
	dirPath := strings.TrimSuffix(url.Path(URL), "/")
	var ret = make([]string, 0, len(objects))
	for _, object := range objects {
		objectPath := strings.TrimSuffix(url.Path(object.URL()), "/")
		if objectPath == dirPath {
			continue
		}
		ret = append(ret, objectPath)
	}
	return ret, nil
}

// CreateDir creates a folder with its missing parents.
func (s *Service) CreateDir(ctx context.Context, location string) error {
	rel, err := s.relative(location)
	if err != nil {
		return err
	}
	URL := s.url(rel)
	if err = s.ensureDir(ctx, URL); err != nil {
		return newError(schema.ReasonCreateDir, URL, "failed to create "+URL, err)
	}
	return nil
}

// MoveDir moves a file or folder.
func (s *Service) MoveDir(ctx context.Context, from, to string) error {
	fromRel, err := s.relative(from)
	if err != nil {
		return err
	}
	toRel, err := s.relative(to)
	if err != nil {
		return err
	}
	source, dest := s.url(fromRel), s.url(toRel)
	if err = s.fs.Move(ctx, source, dest, s.config.Options...); err != nil {
		return newError(schema.ReasonMoveDir, source, "failed to move "+source+" to "+dest, err)
	}
	return nil
}

// Copy copies a file or folder; an existing destination is replaced only with override.
func (s *Service) Copy(ctx context.Context, from, to string, override bool) error {
	fromRel, err := s.relative(from)
	if err != nil {
		return err
	}
	toRel, err := s.relative(to)
	if err != nil {
		return err
	}
	source, dest := s.url(fromRel), s.url(toRel)
	exists, _ := s.fs.Exists(ctx, dest, s.config.Options...)
	if !exists {
		if err = s.requireParent(ctx, toRel, schema.ReasonCopy); err != nil {
			return err
		}
		if err = s.fs.Copy(ctx, source, dest, s.config.Options...); err != nil {
			return newError(schema.ReasonCopy, source, "failed to copy "+source+" to "+dest, err)
		}
		return nil
	}
	if !override {
		return newError(schema.ReasonDestExist, dest, `file or dir "`+dest+`" already exists`, nil)
	}
	if fromRel == toRel {
		return nil
	}
	return s.replace(ctx, source, toRel)
}

// replace copies source next to the destination first, so a failed copy
// leaves the destination untouched.
func (s *Service) replace(ctx context.Context, source, toRel string) error {
	dest := s.url(toRel)
	staged := s.url(path.Join(path.Dir(toRel), "."+path.Base(toRel)+"."+uuid.NewString()+".tmp"))
	if err := s.fs.Copy(ctx, source, staged, s.config.Options...); err != nil {
		_ = s.fs.Delete(ctx, staged, s.config.Options...)
		return newError(schema.ReasonCopy, source, "failed to copy "+source+" to "+dest, err)
	}
	if err := s.fs.Delete(ctx, dest, s.config.Options...); err != nil {
		_ = s.fs.Delete(ctx, staged, s.config.Options...)
		return newError(schema.ReasonCopy, dest, "failed to replace "+dest, err)
	}
	if err := s.fs.Move(ctx, staged, dest, s.config.Options...); err != nil {
		return newError(schema.ReasonCopy, dest, "failed to replace "+dest, err)
	}
	return nil
}

// Unlink removes a file or folder; a missing path is not an error.
func (s *Service) Unlink(ctx context.Context, location string) error {
	rel, err := s.relative(location)
	if err != nil {
		return err
	}
	URL := s.url(rel)
	if exists, _ := s.fs.Exists(ctx, URL, s.config.Options...); !exists {
		return nil
	}
	if err = s.fs.Delete(ctx, URL, s.config.Options...); err != nil {
		return newError(schema.ReasonUnlink, URL, "failed to remove "+URL, err)
	}
	return nil
}

// Exist returns true if file or folder exists.
func (s *Service) Exist(ctx context.Context, location string) (bool, error) {
	rel, err := s.relative(location)
	if err != nil {
		return false, err
	}
	exists, _ := s.fs.Exists(ctx, s.url(rel), s.config.Options...)
	return exists, nil
}

// Stat describes a file or folder.
func (s *Service) Stat(ctx context.Context, location string) (*schema.Stat, error) {
	rel, err := s.relative(location)
	if err != nil {
		return nil, err
	}
	URL := s.url(rel)
	if exists, _ := s.fs.Exists(ctx, URL, s.config.Options...); !exists {
		return nil, newError(schema.ReasonNotExist, URL, "file/folder of "+URL+" not exists", nil)
	}
	object, err := s.fs.Object(ctx, URL, s.config.Options...)
	if err != nil {
		return nil, newError(schema.ReasonStat, URL, "failed to stat "+URL, err)
	}
	modified := object.ModTime().UnixMilli()
	ret := &schema.Stat{
		IsInCloud:            true,
		ContainerDisplayName: s.config.ContainerName,
		IsDir:                object.IsDir(),
		Size:                 object.Size(),
		DownloadStatus:       schema.DownloadStatusCurrent,
		IsUploaded:           true,
		ModifyTimestamp:      modified,
		CreateTimestamp:      modified,
		Name:                 object.Name(),
		LocalizedName:        RemoveDotExt(object.Name()),
	}
	if s.config.LocalURL != "" {
		ret.DownloadStatus = schema.DownloadStatusNotDownloaded
		if local, _ := s.fs.Exists(ctx, s.localURL(rel)); local {
			ret.DownloadStatus = schema.DownloadStatusDownloaded
			ret.HasCalledDownload = true
		}
	}
	return ret, nil
}

// Upload copies a local file into the container; the destination folder must exist.
func (s *Service) Upload(ctx context.Context, localURL, location string) (*schema.GatheringFile, error) {
	rel, err := s.relative(location)
	if err != nil {
		return nil, err
	}
	source, ok := normalizeLocalURL(localURL)
	if !ok {
		return nil, newError(schema.ReasonInvalidPath, localURL, `local path "`+localURL+`" is invalid`, nil)
	}
	dest := s.url(rel)
	if exists, _ := s.fs.Exists(ctx, source); !exists {
		return nil, newError(schema.ReasonCopyToCloud, source, "local file "+source+" not exists", nil)
	}
	if err = s.requireParent(ctx, rel, schema.ReasonCopyToCloud); err != nil {
		return nil, err
	}
	if err = s.fs.Copy(ctx, source, dest, s.config.Options...); err != nil {
		return nil, newError(schema.ReasonCopyToCloud, source, "failed to copy "+source+" to "+dest, err)
	}
	return s.gathered(ctx, schema.GatheringUpload, dest), nil
}

// Download makes a container document available locally.
func (s *Service) Download(ctx context.Context, location string) (*schema.GatheringFile, error) {
	rel, err := s.relative(location)
	if err != nil {
		return nil, err
	}
	URL := s.url(rel)
	if exists, _ := s.fs.Exists(ctx, URL, s.config.Options...); !exists {
		return nil, newError(schema.ReasonDownload, URL, "file/folder of "+URL+" not exists", nil)
	}
	if s.config.LocalURL != "" {
		dest := s.localURL(rel)
		if err = s.ensureDir(ctx, s.localURL(path.Dir(rel))); err != nil {
			return nil, newError(schema.ReasonDownload, dest, "failed to create local folder of "+dest, err)
		}
		if exists, _ := s.fs.Exists(ctx, dest); exists {
			if err = s.fs.Delete(ctx, dest); err != nil {
				return nil, newError(schema.ReasonDownload, dest, "failed to replace "+dest, err)
			}
		}
		if err = s.fs.Copy(ctx, URL, dest, s.config.Options...); err != nil {
			return nil, newError(schema.ReasonDownload, URL, "failed to download "+URL, err)
		}
	}
	return s.gathered(ctx, schema.GatheringDownload, URL), nil
}

func (s *Service) gathered(ctx context.Context, kind, URL string) *schema.GatheringFile {
	progress := 100.0
	ret := &schema.GatheringFile{Type: kind, Path: url.Path(URL), Progress: &progress}
	if object, err := s.fs.Object(ctx, URL, s.config.Options...); err == nil {
		isDir := object.IsDir()
		ret.IsDir = &isDir
	}
	return ret
}

// requireParent reports a missing destination folder explicitly; copy errors
// from the underlying storage blame the source path instead.
func (s *Service) requireParent(ctx context.Context, rel, reason string) error {
	parent := path.Dir(rel)
	if parent == "/" {
		return nil
	}
	parentURL := s.url(parent)
	if exists, _ := s.fs.Exists(ctx, parentURL, s.config.Options...); !exists {
		return newError(reason, parentURL, `folder of "`+url.Path(parentURL)+`" not exists, you need create it first`, nil)
	}
	return nil
}

func (s *Service) ensureDir(ctx context.Context, URL string) error {
	if exists, _ := s.fs.Exists(ctx, URL, s.config.Options...); exists {
		return nil
	}
	return s.fs.Create(ctx, URL, dirMode, true, s.config.Options...)
}

// relative maps a container relative or absolute in-container path to a
// clean relative path starting with "/".
func (s *Service) relative(location string) (string, error) {
	if s.config.ContainerURL == "" {
		return "", errContainerUnavailable
	}
	if containerPath := s.ContainerPath(); containerPath != "" && containerPath != "/" {
		if location == containerPath || strings.HasPrefix(location, containerPath+"/") {
			location = location[len(containerPath):]
		}
	}
	return path.Clean("/" + location), nil
}

func (s *Service) url(rel string) string {
	if rel == "/" {
		return s.config.ContainerURL
	}
	return url.Join(s.config.ContainerURL, strings.TrimPrefix(rel, "/"))
}

func (s *Service) localURL(rel string) string {
	if rel == "/" {
		return s.config.LocalURL
	}
	return url.Join(s.config.LocalURL, strings.TrimPrefix(rel, "/"))
}

func normalizeLocalURL(localURL string) (string, bool) {
	switch {
	case strings.Contains(localURL, "://"):
		return localURL, true
	case strings.HasPrefix(localURL, "/"):
		return "file://" + localURL, true
	}
	return "", false
}

// New creates a container service
func New(config *Config) *Service {
	return &Service{config: config, fs: afs.New()}
}
