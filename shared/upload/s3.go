package upload

import (
	"context"
	"fmt"
	"path"
	"proccms/config"
	"proccms/infras/otel"
	"proccms/infras/s3"
	"proccms/shared/constant"
	"proccms/shared/timezone"
)

type s3Storage struct {
	cfg    *config.Config
	client s3.S3
	otel   otel.Otel
}

func (s *s3Storage) Save(ctx context.Context, file File) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelUploadScopeName, constant.OtelUploadScopeName+".s3.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	contentType, err := Check(file, s.cfg.Upload.MaxSizeMB)
	if err != nil {
		return "", err
	}

	url, err = s.client.UploadFileBytes(ctx, s3Directory, FileName(file.Name, timezone.Now()), contentType, file.Data)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return url, nil
}

func (s *s3Storage) Delete(ctx context.Context, url string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelUploadScopeName, constant.OtelUploadScopeName+".s3.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := s.client.GetObjectNameFromURL(url)
	if key == "" {
		return nil
	}

	if err = s.client.DeleteFile(ctx, path.Dir(key), path.Base(key)); err != nil {
		return fmt.Errorf("failed to delete upload: %w", err)
	}

	return nil
}
