package http

import (
	"errors"
	"net/http"

	"github.com/rviana/subnetcalc/internal/ipcalc"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Describe a network
// @Tags networks
// @Accept json
// @Produce json
// @Param network body DescribeNetworkRequest true "Network in CIDR form"
// @Success 200 {object} NetworkResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/networks/describe [post]
func (a *API) handleDescribeNetwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[DescribeNetworkRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling describe request", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	info, err := a.Service.DescribeNetwork(ctx, req.CIDR)
	if err != nil {
		a.respondEngineError(w, r, err)
		return
	}

	if err = encode(w, r, http.StatusOK, networkToResponse(info)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Split a network into equal subnets
// @Tags networks
// @Accept json
// @Produce json
// @Param split body SplitNetworkRequest true "Network and subnet count"
// @Success 200 {array} SubnetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/networks/split [post]
func (a *API) handleSplitNetwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[SplitNetworkRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling split request", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	records, err := a.Service.SplitNetwork(ctx, req.CIDR, req.Subnets)
	if err != nil {
		a.respondEngineError(w, r, err)
		return
	}

	if err = encode(w, r, http.StatusOK, subnetsToResponse(records)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Allocate variable-length subnets
// @Tags networks
// @Accept json
// @Produce json
// @Param vlsm body VLSMRequest true "Network and per-subnet host requirements"
// @Success 200 {array} SubnetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/networks/vlsm [post]
func (a *API) handleAllocateVLSM(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[VLSMRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling vlsm request", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	records, err := a.Service.AllocateVLSM(ctx, req.CIDR, req.Hosts)
	if err != nil {
		a.respondEngineError(w, r, err)
		return
	}

	if err = encode(w, r, http.StatusOK, subnetsToResponse(records)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Summarize networks into a supernet
// @Description Reports aggregatable=false when the networks do not collapse into one block; that is a normal outcome, not an error.
// @Tags networks
// @Accept json
// @Produce json
// @Param summarize body SummarizeRequest true "Networks in CIDR form"
// @Success 200 {object} SummarizeResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/networks/summarize [post]
func (a *API) handleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[SummarizeRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling summarize request", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	result, err := a.Service.Summarize(ctx, req.CIDRs)
	if err != nil {
		a.respondEngineError(w, r, err)
		return
	}

	if err = encode(w, r, http.StatusOK, summarizeToResponse(result)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Check address membership
// @Tags networks
// @Accept json
// @Produce json
// @Param membership body MembershipRequest true "Network and address"
// @Success 200 {object} MembershipResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/networks/membership [post]
func (a *API) handleMembership(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[MembershipRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling membership request", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	result, err := a.Service.CheckMembership(ctx, req.CIDR, req.IP)
	if err != nil {
		a.respondEngineError(w, r, err)
		return
	}

	resp := MembershipResponse{
		Network:   result.Network.String(),
		IP:        result.Address.String(),
		Contained: result.Contained,
	}
	if err = encode(w, r, http.StatusOK, resp); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Convert a prefix length to a netmask
// @Tags convert
// @Accept json
// @Produce json
// @Param convert body CIDRToMaskRequest true "Prefix length"
// @Success 200 {object} ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/convert/cidr-to-mask [post]
func (a *API) handleCIDRToMask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[CIDRToMaskRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling conversion request", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	mask, err := a.Service.CIDRToNetmask(ctx, req.PrefixLen)
	if err != nil {
		a.respondEngineError(w, r, err)
		return
	}

	resp := ConversionResponse{PrefixLen: req.PrefixLen, Netmask: mask.String()}
	if err = encode(w, r, http.StatusOK, resp); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Convert a netmask to a prefix length
// @Tags convert
// @Accept json
// @Produce json
// @Param convert body MaskToCIDRRequest true "Dotted-decimal netmask"
// @Success 200 {object} ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/convert/mask-to-cidr [post]
func (a *API) handleMaskToCIDR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[MaskToCIDRRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling conversion request", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	prefixLen, err := a.Service.NetmaskToCIDR(ctx, req.Netmask)
	if err != nil {
		a.respondEngineError(w, r, err)
		return
	}

	resp := ConversionResponse{PrefixLen: prefixLen, Netmask: req.Netmask}
	if err = encode(w, r, http.StatusOK, resp); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

func (a *API) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if err := encode(w, r, status, ErrorResponse{Error: message}); err != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", err.Error())
	}
}

// respondEngineError maps the engine's error taxonomy onto HTTP
// statuses: malformed input is the client's fault, an exhausted block
// is a valid request the address math cannot satisfy.
func (a *API) respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	attrs := []any{"err", err.Error()}
	if id, ok := RequestIDFromContext(r.Context()); ok {
		attrs = append(attrs, "request_id", id)
	}
	a.Logger.ErrorContext(r.Context(), "engine rejected request", attrs...)

	switch {
	case errors.Is(err, ipcalc.ErrInsufficientSpace):
		a.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ipcalc.ErrInvalidAddress),
		errors.Is(err, ipcalc.ErrInvalidMask),
		errors.Is(err, ipcalc.ErrInvalidPrefix),
		errors.Is(err, ipcalc.ErrInvalidNetwork),
		errors.Is(err, ipcalc.ErrInvalidArgument):
		a.respondError(w, r, http.StatusBadRequest, err.Error())
	default:
		a.respondError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
