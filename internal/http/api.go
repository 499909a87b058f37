package http

import (
	"log/slog"
	"net/http"

	"github.com/MicahParks/keyfunc/v3"

	"github.com/rviana/subnetcalc/internal/domain"
)

type API struct {
	Logger  *slog.Logger
	Service domain.CalculatorService

	authEnabled  bool
	authIssuer   string
	authAudience string
	jwks         keyfunc.Keyfunc
}

func NewAPI(logger *slog.Logger, service domain.CalculatorService) *API {
	return &API{
		Logger:  logger,
		Service: service,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("POST /api/v1/networks/describe", a.handleDescribeNetwork)
	mux.HandleFunc("POST /api/v1/networks/split", a.handleSplitNetwork)
	mux.HandleFunc("POST /api/v1/networks/vlsm", a.handleAllocateVLSM)
	mux.HandleFunc("POST /api/v1/networks/summarize", a.handleSummarize)
	mux.HandleFunc("POST /api/v1/networks/membership", a.handleMembership)
	mux.HandleFunc("POST /api/v1/convert/cidr-to-mask", a.handleCIDRToMask)
	mux.HandleFunc("POST /api/v1/convert/mask-to-cidr", a.handleMaskToCIDR)

	return a.requestIDMiddleware(a.authMiddleware(mux))
}
