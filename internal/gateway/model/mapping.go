// Package model holds the wire/storage representation of mapping results.
// The engine's in-memory types reference design nodes by pointer; records
// flatten those references to node names so results can be persisted and
// replayed for audit.
package model

import (
	"time"

	"archemap/internal/mapping"
	"archemap/internal/skeleton"
)

type SlotMappingModel struct {
	SlotName     string   `json:"slotName"`
	MatchedNodes []string `json:"matchedNodes,omitempty"`
	Confidence   float64  `json:"confidence"`
	Reasoning    []string `json:"reasoning,omitempty"`
}

type SkeletonModel struct {
	ComponentName  string   `json:"componentName"`
	Imports        []string `json:"imports"`
	PropsInterface string   `json:"propsInterface"`
	Code           string   `json:"code"`
}

// MappingRecord is one persisted mapping outcome.
type MappingRecord struct {
	ID                string             `json:"id"`
	DesignName        string             `json:"designName"`
	Archetype         string             `json:"archetype"`
	OverallConfidence float64            `json:"overallConfidence"`
	Mappings          []SlotMappingModel `json:"mappings"`
	Warnings          []string           `json:"warnings,omitempty"`
	Suggestions       []string           `json:"suggestions,omitempty"`
	Skeleton          *SkeletonModel     `json:"skeleton,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// FromResult flattens an engine result into a record.
func FromResult(id, designName string, result *mapping.Result) MappingRecord {
	rec := MappingRecord{
		ID:         id,
		DesignName: designName,
		CreatedAt:  time.Now().UTC(),
	}
	if result == nil {
		return rec
	}
	rec.Archetype = result.Archetype.String()
	rec.OverallConfidence = result.OverallConfidence
	rec.Warnings = result.Warnings
	rec.Suggestions = result.Suggestions
	for _, m := range result.Mappings {
		sm := SlotMappingModel{
			SlotName:   m.SlotName,
			Confidence: m.Confidence,
			Reasoning:  m.Reasoning,
		}
		for _, n := range m.MatchedNodes {
			sm.MatchedNodes = append(sm.MatchedNodes, n.Name)
		}
		rec.Mappings = append(rec.Mappings, sm)
	}
	return rec
}

// AttachSkeleton copies an emitted skeleton onto the record.
func (r *MappingRecord) AttachSkeleton(sk skeleton.Skeleton) {
	if r == nil {
		return
	}
	r.Skeleton = &SkeletonModel{
		ComponentName:  sk.ComponentName,
		Imports:        sk.Imports,
		PropsInterface: sk.PropsInterface,
		Code:           sk.Code,
	}
}
