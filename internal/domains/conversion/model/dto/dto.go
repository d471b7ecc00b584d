package dto

import (
	"tzconv/internal/domains/conversion/model"
	"tzconv/shared/constant"
)

type ConvertRequest struct {
	Datetime       string `json:"datetime"        validate:"required,max=64" example:"2024-01-15T10:00:00"`
	SourceTimezone string `json:"source_timezone" validate:"required,max=64" example:"America/New_York"`
	TargetTimezone string `json:"target_timezone" validate:"required,max=64" example:"Asia/Kolkata"`
}

type ConvertResponse struct {
	Datetime   string `json:"datetime"   example:"2024-01-15 20:30:00"`
	Timezone   string `json:"timezone"   example:"Asia/Kolkata"`
	Offset     string `json:"offset"     example:"+0530"`
	Difference string `json:"difference" example:"+10h 30m"`
}

func (r *ConvertResponse) FromModel(conversion model.Conversion) {
	r.Datetime = conversion.Target.Format(constant.DateTimeFormat)
	r.Timezone = conversion.Timezone
	r.Offset = conversion.Offset
	r.Difference = conversion.Difference
}
