package upload

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"proccms/config"
	"proccms/infras/otel"
	"proccms/shared/constant"
	"proccms/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type localStorage struct {
	cfg  *config.Config
	otel otel.Otel
}

func (s *localStorage) Save(ctx context.Context, file File) (url string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelUploadScopeName, constant.OtelUploadScopeName+".local.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = Check(file, s.cfg.Upload.MaxSizeMB); err != nil {
		return "", err
	}

	if err = os.MkdirAll(s.cfg.Upload.Dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := FileName(file.Name, timezone.Now())

	if err = os.WriteFile(filepath.Join(s.cfg.Upload.Dir, name), file.Data, filePerm); err != nil {
		log.Error().Err(err).Str("file", name).Msg("failed to write upload")

		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return path.Join(PublicPath, name), nil
}

func (s *localStorage) Delete(ctx context.Context, url string) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelUploadScopeName, constant.OtelUploadScopeName+".local.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !strings.HasPrefix(url, PublicPath+"/") {
		return nil
	}

	err = os.Remove(filepath.Join(s.cfg.Upload.Dir, path.Base(url)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}

	return nil
}
