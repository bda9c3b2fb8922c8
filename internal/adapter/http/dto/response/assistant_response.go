package response

import "fiscalai/internal/domain/entities"

type AssistantActionResponse struct {
	Type string                       `json:"type"`
	Data entities.AssistantActionData `json:"data"`
}

type AssistantCommandResponse struct {
	Action               *AssistantActionResponse `json:"action"`
	Explanation          string                   `json:"explanation"`
	RequiresConfirmation bool                     `json:"requires_confirmation"`
}

func FromInterpretation(in entities.AssistantInterpretation) AssistantCommandResponse {
	out := AssistantCommandResponse{
		Explanation:          in.Explanation,
		RequiresConfirmation: in.RequiresConfirmation,
	}
	if in.Action != nil {
		out.Action = &AssistantActionResponse{Type: in.Action.Type, Data: in.Action.Data}
	}
	return out
}
