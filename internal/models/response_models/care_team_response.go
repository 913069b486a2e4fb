package response_models

type CareTeamResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	CareRecipientName string  `json:"care_recipient_name"`
	CreatedBy         string  `json:"created_by"`
	Role              string  `json:"role,omitempty"`
	CreatedAt         string  `json:"created_at"`
}
