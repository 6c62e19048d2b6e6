package handlers

// SimulateRequest carries one full snapshot of the simulation controls.
// Defaults mirror the original interactive controls; ranges match what
// those controls enforced.
type SimulateRequest struct {
	Lat             float64 `form:"lat,default=28.6139" json:"lat" validate:"latitude"`
	Lon             float64 `form:"lon,default=77.2090" json:"lon" validate:"longitude"`
	UseLiveOzone    bool    `form:"use_live_ozone" json:"use_live_ozone"`
	OzoneDU         float64 `form:"ozone_du,default=300" json:"ozone_du" validate:"min=100,max=400"`
	CloudCoverPct   float64 `form:"cloud_cover_pct,default=20" json:"cloud_cover_pct" validate:"min=0,max=100"`
	AltitudeKm      float64 `form:"altitude_km" json:"altitude_km" validate:"min=0,max=5"`
	SPF             int     `form:"spf,default=30" json:"spf" validate:"min=5,max=100"`
	ExposureMinutes float64 `form:"exposure_minutes,default=60" json:"exposure_minutes" validate:"min=5,max=180"`
	SkinType        string  `form:"skin_type,default=type_i" json:"skin_type" validate:"skintype"`
}

// OzoneRequest asks for a live ozone lookup only.
type OzoneRequest struct {
	Lat float64 `form:"lat" json:"lat" binding:"required" validate:"latitude"`
	Lon float64 `form:"lon" json:"lon" binding:"required" validate:"longitude"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version,omitempty"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp,omitempty"`
}
