package rpc

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"archemap/internal/codegen"
	mappingsvc "archemap/internal/gateway/service/mapping"
	"archemap/internal/schema"
)

// Procedure paths follow the connect convention <package.Service>/<Method>.
const (
	procMapDesign      = "/archemap.v1.MappingService/MapDesign"
	procGetMapping     = "/archemap.v1.MappingService/GetMapping"
	procListMappings   = "/archemap.v1.MappingService/ListMappings"
	procListArchetypes = "/archemap.v1.MappingService/ListArchetypes"
	procRefineMapping  = "/archemap.v1.MappingService/RefineMapping"
)

// MappingHandler serves the mapping RPCs.
type MappingHandler struct {
	svc     *mappingsvc.Service
	catalog *schema.Catalog
	codegen *codegen.GeminiClient
}

func NewMappingHandler(svc *mappingsvc.Service, catalog *schema.Catalog, cg *codegen.GeminiClient) *MappingHandler {
	return &MappingHandler{svc: svc, catalog: catalog, codegen: cg}
}

// Mount registers all procedures on the mux.
func (h *MappingHandler) Mount(mux *http.ServeMux) {
	opts := connect.WithCodec(jsonCodec{})
	mux.Handle(procMapDesign, connect.NewUnaryHandler(procMapDesign, h.mapDesign, opts))
	mux.Handle(procGetMapping, connect.NewUnaryHandler(procGetMapping, h.getMapping, opts))
	mux.Handle(procListMappings, connect.NewUnaryHandler(procListMappings, h.listMappings, opts))
	mux.Handle(procListArchetypes, connect.NewUnaryHandler(procListArchetypes, h.listArchetypes, opts))
	mux.Handle(procRefineMapping, connect.NewUnaryHandler(procRefineMapping, h.refineMapping, opts))
}

func (h *MappingHandler) mapDesign(ctx context.Context, req *connect.Request[MapDesignRequest]) (*connect.Response[MapDesignResponse], error) {
	if len(req.Msg.Design) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("design is required"))
	}
	rec, err := h.svc.MapDesign(ctx, req.Msg.RequestID, req.Msg.Design, req.Msg.EmitSkeleton)
	if err != nil {
		if strings.Contains(err.Error(), "malformed input") {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&MapDesignResponse{Record: rec}), nil
}

func (h *MappingHandler) getMapping(ctx context.Context, req *connect.Request[GetMappingRequest]) (*connect.Response[GetMappingResponse], error) {
	id := strings.TrimSpace(req.Msg.MappingID)
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("mapping_id is required"))
	}
	rec, ok, err := h.svc.GetMapping(ctx, id)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("mapping %s not found", id))
	}
	return connect.NewResponse(&GetMappingResponse{Record: rec}), nil
}

func (h *MappingHandler) listMappings(ctx context.Context, req *connect.Request[ListMappingsRequest]) (*connect.Response[ListMappingsResponse], error) {
	records, err := h.svc.ListMappings(ctx, req.Msg.Limit)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&ListMappingsResponse{Records: records}), nil
}

func (h *MappingHandler) listArchetypes(_ context.Context, _ *connect.Request[ListArchetypesRequest]) (*connect.Response[ListArchetypesResponse], error) {
	out := &ListArchetypesResponse{}
	for _, a := range h.catalog.Archetypes() {
		s, _ := h.catalog.Lookup(a)
		out.Archetypes = append(out.Archetypes, ArchetypeInfo{
			Name:      a.String(),
			SlotCount: s.SlotCount(),
		})
	}
	return connect.NewResponse(out), nil
}

func (h *MappingHandler) refineMapping(ctx context.Context, req *connect.Request[RefineMappingRequest]) (*connect.Response[RefineMappingResponse], error) {
	if h.codegen == nil {
		return nil, connect.NewError(connect.CodeUnimplemented, fmt.Errorf("codegen is not configured"))
	}
	id := strings.TrimSpace(req.Msg.MappingID)
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("mapping_id is required"))
	}
	rec, ok, err := h.svc.GetMapping(ctx, id)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("mapping %s not found", id))
	}
	code, err := h.codegen.Refine(ctx, rec)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}
	return connect.NewResponse(&RefineMappingResponse{Code: code}), nil
}
