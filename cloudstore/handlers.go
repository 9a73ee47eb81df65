package cloudstore

import (
	"context"

	"github.com/viant/cloudbridge/bridge"
	"github.com/viant/cloudbridge/internal/conv"
	"github.com/viant/cloudbridge/schema"
)

func (m *Module) registrations() []bridge.Registration {
	return []bridge.Registration{
		{Name: schema.MethodGetConstants, Handler: bridge.HandlerFunc(m.getConstants)},
		{Name: schema.MethodGetCloudURL, Handler: bridge.HandlerFunc(m.getCloudURL)},
		{Name: schema.MethodIsCloudAvailable, Handler: bridge.HandlerFunc(m.isCloudAvailable)},
		{Name: schema.MethodWriteFile, Handler: bridge.HandlerFunc(m.writeFile)},
		{Name: schema.MethodReadFile, Handler: bridge.HandlerFunc(m.readFile)},
		{Name: schema.MethodReadDir, Handler: bridge.HandlerFunc(m.readDir)},
		{Name: schema.MethodCreateDir, Handler: bridge.HandlerFunc(m.createDir)},
		{Name: schema.MethodMoveDir, Handler: bridge.HandlerFunc(m.moveDir)},
		{Name: schema.MethodCopy, Handler: bridge.HandlerFunc(m.copy)},
		{Name: schema.MethodUnlink, Handler: bridge.HandlerFunc(m.unlink)},
		{Name: schema.MethodExist, Handler: bridge.HandlerFunc(m.exist)},
		{Name: schema.MethodStat, Handler: bridge.HandlerFunc(m.stat)},
		{Name: schema.MethodUpload, Handler: bridge.HandlerFunc(m.upload)},
		{Name: schema.MethodDownload, Handler: bridge.HandlerFunc(m.download)},
		{Name: schema.MethodKVSync, Handler: bridge.HandlerFunc(m.kvSync)},
		{Name: schema.MethodKVSetItem, Handler: bridge.HandlerFunc(m.kvSetItem)},
		{Name: schema.MethodKVGetItem, Handler: bridge.HandlerFunc(m.kvGetItem)},
		{Name: schema.MethodKVRemoveItem, Handler: bridge.HandlerFunc(m.kvRemoveItem)},
		{Name: schema.MethodKVGetAllItems, Handler: bridge.HandlerFunc(m.kvGetAllItems)},
	}
}

func (m *Module) getConstants(ctx context.Context, args []any) (any, error) {
	return m.Constants(), nil
}

func (m *Module) getCloudURL(ctx context.Context, args []any) (any, error) {
	if !m.storage.Available(ctx) {
		return nil, nil
	}
	return m.storage.ContainerURL(), nil
}

func (m *Module) isCloudAvailable(ctx context.Context, args []any) (any, error) {
	return m.storage.Available(ctx), nil
}

func (m *Module) writeFile(ctx context.Context, args []any) (any, error) {
	location, err := conv.String(args, 0, "path")
	if err != nil {
		return nil, err
	}
	content, err := conv.String(args, 1, "content")
	if err != nil {
		return nil, err
	}
	options, err := conv.Options(args, 2, "options")
	if err != nil {
		return nil, err
	}
	return nil, m.storage.WriteFile(ctx, location, content, conv.AsBool(options["override"]))
}

func (m *Module) readFile(ctx context.Context, args []any) (any, error) {
	location, err := conv.String(args, 0, "path")
	if err != nil {
		return nil, err
	}
	return m.storage.ReadFile(ctx, location)
}

func (m *Module) readDir(ctx context.Context, args []any) (any, error) {
	location, err := conv.String(args, 0, "path")
	if err != nil {
		return nil, err
	}
	return m.storage.ReadDir(ctx, location)
}

func (m *Module) createDir(ctx context.Context, args []any) (any, error) {
	location, err := conv.String(args, 0, "path")
	if err != nil {
		return nil, err
	}
	return nil, m.storage.CreateDir(ctx, location)
}

func (m *Module) moveDir(ctx context.Context, args []any) (any, error) {
	from, err := conv.String(args, 0, "from")
	if err != nil {
		return nil, err
	}
	to, err := conv.String(args, 1, "to")
	if err != nil {
		return nil, err
	}
	return nil, m.storage.MoveDir(ctx, from, to)
}

func (m *Module) copy(ctx context.Context, args []any) (any, error) {
	from, err := conv.String(args, 0, "from")
	if err != nil {
		return nil, err
	}
	to, err := conv.String(args, 1, "to")
	if err != nil {
		return nil, err
	}
	options, err := conv.Options(args, 2, "options")
	if err != nil {
		return nil, err
	}
	return nil, m.storage.Copy(ctx, from, to, conv.AsBool(options["override"]))
}

func (m *Module) unlink(ctx context.Context, args []any) (any, error) {
	location, err := conv.String(args, 0, "path")
	if err != nil {
		return nil, err
	}
	return nil, m.storage.Unlink(ctx, location)
}

func (m *Module) exist(ctx context.Context, args []any) (any, error) {
	location, err := conv.String(args, 0, "path")
	if err != nil {
		return nil, err
	}
	return m.storage.Exist(ctx, location)
}

func (m *Module) stat(ctx context.Context, args []any) (any, error) {
	location, err := conv.String(args, 0, "path")
	if err != nil {
		return nil, err
	}
	return m.storage.Stat(ctx, location)
}

func (m *Module) upload(ctx context.Context, args []any) (any, error) {
	localURL, err := conv.String(args, 0, "localPath")
	if err != nil {
		return nil, err
	}
	location, err := conv.String(args, 1, "path")
	if err != nil {
		return nil, err
	}
	m.emit(ctx, schema.EventDocumentsStartGathering, gathering())
	file, err := m.storage.Upload(ctx, localURL, location)
	if err != nil {
		return nil, err
	}
	finished := gathering(*file)
	finished.Info.Added = append(finished.Info.Added, file.Path)
	m.emit(ctx, schema.EventDocumentsFinishGathering, finished)
	return nil, nil
}

func (m *Module) download(ctx context.Context, args []any) (any, error) {
	location, err := conv.String(args, 0, "path")
	if err != nil {
		return nil, err
	}
	m.emit(ctx, schema.EventDocumentsStartGathering, gathering())
	file, err := m.storage.Download(ctx, location)
	if err != nil {
		return nil, err
	}
	finished := gathering(*file)
	finished.Info.Changed = append(finished.Info.Changed, file.Path)
	m.emit(ctx, schema.EventDocumentsFinishGathering, finished)
	return nil, nil
}

func (m *Module) kvSync(ctx context.Context, args []any) (any, error) {
	return nil, m.kv.Sync(ctx)
}

func (m *Module) kvSetItem(ctx context.Context, args []any) (any, error) {
	key, err := conv.String(args, 0, "key")
	if err != nil {
		return nil, err
	}
	value, err := conv.String(args, 1, "value")
	if err != nil {
		return nil, err
	}
	return nil, m.kv.Set(ctx, key, value)
}

func (m *Module) kvGetItem(ctx context.Context, args []any) (any, error) {
	key, err := conv.String(args, 0, "key")
	if err != nil {
		return nil, err
	}
	value, err := m.kv.Get(ctx, key)
	if err != nil || value == nil {
		return nil, err
	}
	return *value, nil
}

func (m *Module) kvRemoveItem(ctx context.Context, args []any) (any, error) {
	key, err := conv.String(args, 0, "key")
	if err != nil {
		return nil, err
	}
	return nil, m.kv.Remove(ctx, key)
}

func (m *Module) kvGetAllItems(ctx context.Context, args []any) (any, error) {
	return m.kv.All(ctx)
}

func gathering(files ...schema.GatheringFile) *schema.GatheringData {
	return &schema.GatheringData{
		Info:   schema.GatheringInfo{Added: []string{}, Changed: []string{}, Removed: []string{}},
		Detail: append([]schema.GatheringFile{}, files...),
	}
}
