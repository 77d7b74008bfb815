// File: /controllers/motorcycle_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"motolinks-api/middleware"
	"motolinks-api/models"
	"motolinks-api/repositories"
	"motolinks-api/services"
	"motolinks-api/utils"
)

const defaultPerPage = 10

// listParamWhitelist is every query parameter the list endpoint accepts.
var listParamWhitelist = map[string]bool{
	"brand":    true,
	"model":    true,
	"year":     true,
	"category": true,
	"page":     true,
	"per_page": true,
}

type MotorcycleController struct {
	motorcycles repositories.MotorcycleRepository
	codes       *services.ShortCodeGenerator
	log         *zap.Logger
}

func NewMotorcycleController(motorcycles repositories.MotorcycleRepository, codes *services.ShortCodeGenerator, log *zap.Logger) *MotorcycleController {
	return &MotorcycleController{
		motorcycles: motorcycles,
		codes:       codes,
		log:         log,
	}
}

// CreateMotorcycleRequest uses pointer fields so a missing key can be told
// apart from a zero value; every field is required at creation.
type CreateMotorcycleRequest struct {
	NIV              *string  `json:"niv"`
	Brand            *string  `json:"brand"`
	Model            *string  `json:"model"`
	Year             *int     `json:"year"`
	Category         *string  `json:"category"`
	Rating           *float64 `json:"rating"`
	Displacement     *int     `json:"displacement"`
	Power            *float64 `json:"power"`
	Torque           *int     `json:"torque"`
	EngineCylinders  *string  `json:"engine_cylinders"`
	EngineStroke     *string  `json:"engine_stroke"`
	Gearbox          *string  `json:"gearbox"`
	Bore             *int     `json:"bore"`
	Stroke           *float64 `json:"stroke"`
	TransmissionType *string  `json:"transmission_type"`
	FrontBrakes      *string  `json:"front_brakes"`
	RearBrakes       *string  `json:"rear_brakes"`
	FrontSuspension  *string  `json:"front_suspension"`
	RearSuspension   *string  `json:"rear_suspension"`
	FrontTire        *string  `json:"front_tire"`
	RearTire         *string  `json:"rear_tire"`
	DryWeight        *int     `json:"dry_weight"`
	Wheelbase        *int     `json:"wheelbase"`
	FuelCapacity     *int     `json:"fuel_capacity"`
	FuelSystem       *string  `json:"fuel_system"`
	FuelControl      *string  `json:"fuel_control"`
	SeatHeight       *float64 `json:"seat_height"`
	CoolingSystem    *string  `json:"cooling_system"`
	ColorOptions     *string  `json:"color_options"`
	URL              *string  `json:"url"`
}

// missingParam returns the first absent field in declaration order, so the
// error always names the same field for the same payload.
func (r *CreateMotorcycleRequest) missingParam() string {
	checks := []struct {
		name    string
		present bool
	}{
		{"niv", r.NIV != nil},
		{"brand", r.Brand != nil},
		{"model", r.Model != nil},
		{"year", r.Year != nil},
		{"category", r.Category != nil},
		{"rating", r.Rating != nil},
		{"displacement", r.Displacement != nil},
		{"power", r.Power != nil},
		{"torque", r.Torque != nil},
		{"engine_cylinders", r.EngineCylinders != nil},
		{"engine_stroke", r.EngineStroke != nil},
		{"gearbox", r.Gearbox != nil},
		{"bore", r.Bore != nil},
		{"stroke", r.Stroke != nil},
		{"transmission_type", r.TransmissionType != nil},
		{"front_brakes", r.FrontBrakes != nil},
		{"rear_brakes", r.RearBrakes != nil},
		{"front_suspension", r.FrontSuspension != nil},
		{"rear_suspension", r.RearSuspension != nil},
		{"front_tire", r.FrontTire != nil},
		{"rear_tire", r.RearTire != nil},
		{"dry_weight", r.DryWeight != nil},
		{"wheelbase", r.Wheelbase != nil},
		{"fuel_capacity", r.FuelCapacity != nil},
		{"fuel_system", r.FuelSystem != nil},
		{"fuel_control", r.FuelControl != nil},
		{"seat_height", r.SeatHeight != nil},
		{"cooling_system", r.CoolingSystem != nil},
		{"color_options", r.ColorOptions != nil},
		{"url", r.URL != nil},
	}
	for _, ch := range checks {
		if !ch.present {
			return ch.name
		}
	}
	return ""
}

func (mc *MotorcycleController) CreateMotorcycle(c *gin.Context) {
	var req CreateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.missingParam(); missing != "" {
		utils.SendError(c, http.StatusBadRequest, fmt.Sprintf("Missing %s parameter", missing))
		return
	}

	if !utils.IsValidURL(*req.URL) {
		utils.SendError(c, http.StatusBadRequest, "Invalid URL")
		return
	}

	if taken, err := mc.motorcycles.URLTaken(*req.URL, ""); err != nil {
		mc.internalError(c, "url uniqueness check failed", err)
		return
	} else if taken {
		utils.SendError(c, http.StatusConflict, "URL already exists")
		return
	}

	if taken, err := mc.motorcycles.NIVTaken(*req.NIV); err != nil {
		mc.internalError(c, "niv uniqueness check failed", err)
		return
	} else if taken {
		utils.SendError(c, http.StatusConflict, "NIV already exists")
		return
	}

	shortURL, err := mc.codes.Generate()
	if err != nil {
		mc.internalError(c, "short code generation failed", err)
		return
	}

	motorcycle := models.Motorcycle{
		NIV:              *req.NIV,
		Brand:            *req.Brand,
		Model:            *req.Model,
		Year:             *req.Year,
		Category:         *req.Category,
		Rating:           *req.Rating,
		Displacement:     *req.Displacement,
		Power:            *req.Power,
		Torque:           *req.Torque,
		EngineCylinders:  *req.EngineCylinders,
		EngineStroke:     *req.EngineStroke,
		Gearbox:          *req.Gearbox,
		Bore:             *req.Bore,
		Stroke:           *req.Stroke,
		TransmissionType: *req.TransmissionType,
		FrontBrakes:      *req.FrontBrakes,
		RearBrakes:       *req.RearBrakes,
		FrontSuspension:  *req.FrontSuspension,
		RearSuspension:   *req.RearSuspension,
		FrontTire:        *req.FrontTire,
		RearTire:         *req.RearTire,
		DryWeight:        *req.DryWeight,
		Wheelbase:        *req.Wheelbase,
		FuelCapacity:     *req.FuelCapacity,
		FuelSystem:       *req.FuelSystem,
		FuelControl:      *req.FuelControl,
		SeatHeight:       *req.SeatHeight,
		CoolingSystem:    *req.CoolingSystem,
		ColorOptions:     *req.ColorOptions,
		URL:              *req.URL,
		ShortURL:         shortURL,
		Visits:           0,
		UserID:           middleware.UserID(c),
	}

	if err := mc.motorcycles.Create(&motorcycle); err != nil {
		if err == repositories.ErrDuplicateKey {
			// A concurrent insert won the race; report the same conflict the
			// pre-check would have.
			if taken, _ := mc.motorcycles.URLTaken(motorcycle.URL, ""); taken {
				utils.SendError(c, http.StatusConflict, "URL already exists")
				return
			}
			utils.SendError(c, http.StatusConflict, "NIV already exists")
			return
		}
		mc.internalError(c, "motorcycle create failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     fmt.Sprintf("Motorcycle %s added successfully", motorcycle.NIV),
		"niv":         motorcycle.NIV,
		"brand":       motorcycle.Brand,
		"model":       motorcycle.Model,
		"year":        motorcycle.Year,
		"url":         motorcycle.URL,
		"short_url":   motorcycle.ShortURL,
		"visit_count": motorcycle.Visits,
	})
}

// GetMotorcycles lists the catalog. Without any query parameters it returns
// a plain page, empty or not. With parameters, every key must be whitelisted
// and an empty result is 404 — deliberate, inherited API behavior.
func (mc *MotorcycleController) GetMotorcycles(c *gin.Context) {
	rawKeys := orderedQueryKeys(c.Request.URL.RawQuery)

	if len(rawKeys) == 0 {
		items, meta, err := mc.motorcycles.List(repositories.MotorcycleFilter{}, 1, defaultPerPage)
		if err != nil {
			mc.internalError(c, "motorcycle list failed", err)
			return
		}
		mc.sendPage(c, items, meta)
		return
	}

	for _, key := range rawKeys {
		if !listParamWhitelist[key] {
			utils.SendError(c, http.StatusBadRequest, fmt.Sprintf("Invalid parameter - %s", key))
			return
		}
	}

	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", defaultPerPage)

	filter := repositories.MotorcycleFilter{
		Brand:    c.Query("brand"),
		Model:    c.Query("model"),
		Year:     c.Query("year"),
		Category: c.Query("category"),
	}

	items, meta, err := mc.motorcycles.List(filter, page, perPage)
	if err != nil {
		mc.internalError(c, "motorcycle list failed", err)
		return
	}

	if len(items) == 0 {
		utils.SendError(c, http.StatusNotFound, "No motorcycles found")
		return
	}

	mc.sendPage(c, items, meta)
}

func (mc *MotorcycleController) sendPage(c *gin.Context, items []models.Motorcycle, meta repositories.PageMeta) {
	data := make([]gin.H, 0, len(items))
	for i := range items {
		data = append(data, motorcycleData(&items[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Motorcycles retrieved successfully",
		"data":    data,
		"meta":    meta,
	})
}

func (mc *MotorcycleController) GetMotorcycle(c *gin.Context) {
	motorcycle, err := mc.motorcycles.FindByNIV(c.Param("niv"))
	if err != nil {
		mc.internalError(c, "motorcycle lookup failed", err)
		return
	}
	if motorcycle == nil {
		utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Motorcycle retrieved successfully",
		"data":    motorcycleData(motorcycle),
	})
}

func (mc *MotorcycleController) UpdateMotorcycle(c *gin.Context) {
	niv := c.Param("niv")
	motorcycle, err := mc.motorcycles.FindByNIV(niv)
	if err != nil {
		mc.internalError(c, "motorcycle lookup failed", err)
		return
	}
	if motorcycle == nil {
		utils.SendError(c, http.StatusNotFound, fmt.Sprintf("Motorcycle with NIV - %s - not found", niv))
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if rawURL, ok := body["url"]; ok {
		newURL, isString := rawURL.(string)
		if !isString || !utils.IsValidURL(newURL) {
			utils.SendError(c, http.StatusBadRequest, "Invalid URL")
			return
		}
		taken, err := mc.motorcycles.URLTaken(newURL, motorcycle.NIV)
		if err != nil {
			mc.internalError(c, "url uniqueness check failed", err)
			return
		}
		if taken {
			utils.SendError(c, http.StatusConflict, "URL already exists")
			return
		}
	}

	// The whole update is validated before any field is applied: one unknown
	// key or badly typed value rejects the request with nothing mutated.
	updates, badKey := buildMotorcycleUpdates(body)
	if badKey != "" {
		utils.SendError(c, http.StatusBadRequest, fmt.Sprintf("Invalid parameter - %s", badKey))
		return
	}

	if len(updates) > 0 {
		if err := mc.motorcycles.Update(motorcycle, updates); err != nil {
			if err == repositories.ErrDuplicateKey {
				if _, hasNIV := updates["niv"]; hasNIV {
					utils.SendError(c, http.StatusConflict, "NIV already exists")
					return
				}
				utils.SendError(c, http.StatusConflict, "URL already exists")
				return
			}
			mc.internalError(c, "motorcycle update failed", err)
			return
		}
	}

	finalNIV := motorcycle.NIV
	if v, ok := updates["niv"].(string); ok {
		finalNIV = v
	}
	updated, err := mc.motorcycles.FindByNIV(finalNIV)
	if err != nil || updated == nil {
		mc.internalError(c, "motorcycle reload failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Motorcycle updated successfully",
		"data": gin.H{
			"niv":         updated.NIV,
			"brand":       updated.Brand,
			"model":       updated.Model,
			"year":        updated.Year,
			"url":         updated.URL,
			"short_url":   updated.ShortURL,
			"visit_count": updated.Visits,
			"created_at":  updated.CreatedAt,
			"updated_at":  updated.UpdatedAt,
		},
	})
}

func (mc *MotorcycleController) DeleteMotorcycle(c *gin.Context) {
	niv := c.Param("niv")
	if err := mc.motorcycles.Delete(niv); err != nil {
		if repositories.IsNotFound(err) {
			utils.SendError(c, http.StatusNotFound, fmt.Sprintf("Motorcycle with niv - %s - not found", niv))
			return
		}
		mc.internalError(c, "motorcycle delete failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStats lists the authenticated user's records with their visit counters.
func (mc *MotorcycleController) GetStats(c *gin.Context) {
	items, err := mc.motorcycles.ByOwner(middleware.UserID(c))
	if err != nil {
		mc.internalError(c, "stats query failed", err)
		return
	}

	data := make([]gin.H, 0, len(items))
	for _, m := range items {
		data = append(data, gin.H{
			"visits":    m.Visits,
			"url":       m.URL,
			"niv":       m.NIV,
			"short_url": m.ShortURL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Motorcycles related to user retrieved successfully",
		"data":    data,
	})
}

func (mc *MotorcycleController) internalError(c *gin.Context, msg string, err error) {
	mc.log.Error(msg, zap.Error(err))
	utils.SendError(c, http.StatusInternalServerError, "Internal server error")
}

// motorcycleData is the full wire representation of a record.
func motorcycleData(m *models.Motorcycle) gin.H {
	return gin.H{
		"niv":               m.NIV,
		"brand":             m.Brand,
		"model":             m.Model,
		"year":              m.Year,
		"category":          m.Category,
		"rating":            m.Rating,
		"displacement":      m.Displacement,
		"power":             m.Power,
		"torque":            m.Torque,
		"engine_cylinders":  m.EngineCylinders,
		"engine_stroke":     m.EngineStroke,
		"gearbox":           m.Gearbox,
		"bore":              m.Bore,
		"stroke":            m.Stroke,
		"transmission_type": m.TransmissionType,
		"front_brakes":      m.FrontBrakes,
		"rear_brakes":       m.RearBrakes,
		"front_suspension":  m.FrontSuspension,
		"rear_suspension":   m.RearSuspension,
		"front_tire":        m.FrontTire,
		"rear_tire":         m.RearTire,
		"dry_weight":        m.DryWeight,
		"wheelbase":         m.Wheelbase,
		"fuel_capacity":     m.FuelCapacity,
		"fuel_system":       m.FuelSystem,
		"fuel_control":      m.FuelControl,
		"seat_height":       m.SeatHeight,
		"cooling_system":    m.CoolingSystem,
		"color_options":     m.ColorOptions,
		"url":               m.URL,
		"short_url":         m.ShortURL,
		"visit_count":       m.Visits,
		"created_at":        m.CreatedAt,
		"updated_at":        m.UpdatedAt,
	}
}

// buildMotorcycleUpdates validates every key and value of a partial update
// and maps them onto column updates. It returns the offending key (keys are
// visited in sorted order so the answer is deterministic) when validation
// fails.
func buildMotorcycleUpdates(body map[string]interface{}) (map[string]interface{}, string) {
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updates := make(map[string]interface{}, len(body))
	for _, key := range keys {
		value := body[key]
		switch key {
		case "niv", "brand", "model", "category", "engine_cylinders",
			"engine_stroke", "gearbox", "transmission_type", "front_brakes",
			"rear_brakes", "front_suspension", "rear_suspension", "front_tire",
			"rear_tire", "fuel_system", "fuel_control", "cooling_system",
			"color_options", "url":
			s, ok := value.(string)
			if !ok {
				return nil, key
			}
			updates[key] = s
		case "year", "displacement", "torque", "bore", "dry_weight",
			"wheelbase", "fuel_capacity":
			f, ok := value.(float64)
			if !ok {
				return nil, key
			}
			updates[key] = int(f)
		case "rating", "power", "stroke", "seat_height":
			f, ok := value.(float64)
			if !ok {
				return nil, key
			}
			updates[key] = f
		default:
			return nil, key
		}
	}
	return updates, ""
}

// orderedQueryKeys returns the query parameter names in request order, which
// a parsed url.Values map cannot provide.
func orderedQueryKeys(rawQuery string) []string {
	if rawQuery == "" {
		return nil
	}
	var keys []string
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		name := pair
		if i := strings.IndexByte(pair, '='); i >= 0 {
			name = pair[:i]
		}
		if decoded, err := url.QueryUnescape(name); err == nil {
			name = decoded
		}
		keys = append(keys, name)
	}
	return keys
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
