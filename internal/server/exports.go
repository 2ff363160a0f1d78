package server

import (
	"context"
	"fmt"
	"net/http"

	"djtracker/internal/domain/entity"
	"djtracker/internal/domain/value"
	"djtracker/pkg/errcodes"
	"djtracker/pkg/httpx/reply"
)

type exportService interface {
	View(ctx context.Context, mode value.PlayMode, filters map[string]string) (entity.ExportTable, error)
}

type ExportServer struct {
	exportService exportService
}

func NewExportServer(exportService exportService) ExportServer {
	return ExportServer{
		exportService: exportService,
	}
}

func (s ExportServer) getV1Exports(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	mode, err := playMode(r, "type", errcodes.InvalidPlayType)
	if err != nil {
		return err
	}

	table, err := s.exportService.View(ctx, mode, exportFilters(r))
	if err != nil {
		return fmt.Errorf("exportService.View: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTExport(mode, table))

	return nil
}
