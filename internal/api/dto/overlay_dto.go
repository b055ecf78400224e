package dto

import "github.com/spec-kit/bank-crm/internal/overlay"

// OverlayOpenRequest carries the open params, e.g. {"lead_id": "L001"}.
type OverlayOpenRequest struct {
	Params map[string]string `json:"params" validate:"omitempty,dive,keys,required,max=64,endkeys,max=4000"`
}

// OverlayUpdateRequest carries local state edits.
type OverlayUpdateRequest struct {
	Fields map[string]string `json:"fields" validate:"required,min=1,dive,keys,required,max=64,endkeys,max=4000"`
}

// OverlayActionRequest carries action input.
type OverlayActionRequest struct {
	Input map[string]string `json:"input" validate:"omitempty,dive,keys,required,max=64,endkeys,max=4000"`
}

// OverlayActionResponse reports the overlay after the action and what the
// action produced.
type OverlayActionResponse struct {
	Overlay overlay.Snapshot `json:"overlay"`
	Result  *overlay.Result  `json:"result,omitempty"`
}
