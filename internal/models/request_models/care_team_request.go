package request_models

type CreateCareTeamRequest struct {
	Name              string `json:"name" binding:"required"`
	CareRecipientName string `json:"care_recipient_name" binding:"required"`
	Description       string `json:"description"`
}
