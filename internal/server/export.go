package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/docstream/docstream/gen/proto/docstream/v1"
	"github.com/docstream/docstream/internal/export"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	exporter *export.Service
	logger   *slog.Logger
}

func NewExportService(exporter *export.Service, logger *slog.Logger) *ExportService {
	return &ExportService{exporter: exporter, logger: logger}
}

func (s *ExportService) ExportDocuments(ctx context.Context, req *v1.ExportDocumentsRequest) (*v1.ExportDocumentsResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(strings.TrimSpace(req.GetFormat()))
	if format == "" {
		format = "csv"
	}

	var (
		data        []byte
		contentType string
	)
	switch format {
	case "csv":
		data, err = s.exporter.ExportCSV(ctx, userID)
		contentType = "text/csv; charset=utf-8"
	case "json":
		data, err = s.exporter.ExportJSON(ctx, userID)
		contentType = "application/json"
	case "xlsx":
		data, err = s.exporter.ExportXLSX(ctx, userID)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown export format %q", format)
	}
	if err != nil {
		s.logger.Error("export failed", "user_id", userID, "format", format, "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}

	return &v1.ExportDocumentsResponse{
		Data:        data,
		Filename:    fmt.Sprintf("docstream-export-%s.%s", time.Now().UTC().Format("2006-01-02"), format),
		ContentType: contentType,
	}, nil
}
