package rpc

import (
	"encoding/json"

	"archemap/internal/gateway/model"
)

// Wire types for the MappingService procedures.

type MapDesignRequest struct {
	// RequestID, when set, becomes the record ID. Clients open the
	// /ws/mapping stream with this ID before calling MapDesign so no
	// progress event is missed. Empty lets the service assign one.
	RequestID string `json:"requestId,omitempty"`
	// Design is the raw DesignNode tree from the ingestion collaborator.
	Design       json.RawMessage `json:"design"`
	EmitSkeleton bool            `json:"emitSkeleton,omitempty"`
}

type MapDesignResponse struct {
	Record model.MappingRecord `json:"record"`
}

type GetMappingRequest struct {
	MappingID string `json:"mappingId"`
}

type GetMappingResponse struct {
	Record model.MappingRecord `json:"record"`
}

type ListMappingsRequest struct {
	Limit int `json:"limit,omitempty"`
}

type ListMappingsResponse struct {
	Records []model.MappingRecord `json:"records"`
}

type ListArchetypesRequest struct{}

type ArchetypeInfo struct {
	Name      string `json:"name"`
	SlotCount int    `json:"slotCount"`
}

type ListArchetypesResponse struct {
	Archetypes []ArchetypeInfo `json:"archetypes"`
}

type RefineMappingRequest struct {
	MappingID string `json:"mappingId"`
}

type RefineMappingResponse struct {
	Code string `json:"code"`
}
