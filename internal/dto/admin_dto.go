package dto

type LeadRequestInput struct {
	CollegeName   string `json:"collegeName" binding:"required"`
	Degree        string `json:"degree" binding:"required"`
	YearOfPassing string `json:"yearOfPassing" binding:"required"`
	Agenda        string `json:"agenda" binding:"required"`
}

type ReviewLeadRequest struct {
	TargetIdentity string `json:"targetUserId" binding:"required"`
	Action         string `json:"action" binding:"required,oneof=approve reject"`
}

type RemoveUserRequest struct {
	TargetIdentity string `json:"identity" binding:"required"`
}
