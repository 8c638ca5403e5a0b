package mcp

import (
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/career-hunter/internal/domain/job"
	"github.com/honeycarbs/career-hunter/internal/mcp/tools"
	"github.com/honeycarbs/career-hunter/pkg/logging"
)

const (
	serverName    = "career-hunter"
	serverVersion = "0.1.0"
)

// NewServer constructs the MCP server with job_search, cache_clear and, when
// exporter is non-nil, sheets_export registered
func NewServer(svc job.Service, exporter tools.SheetsExporter, logger *logging.Logger) *sdkmcp.Server {
	impl := &sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}

	server := sdkmcp.NewServer(impl, nil)

	opts := []tools.Option{
		tools.WithJobSearch(svc),
		tools.WithCacheClear(svc),
	}
	if exporter != nil {
		opts = append(opts, tools.WithSheetsExport(svc, exporter))
	}
	tools.Register(server, logger, opts...)

	return server
}

// NewHandler serves server over the streamable HTTP transport
func NewHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return server
	}, nil)
}
