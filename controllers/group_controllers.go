package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

// GetUpcomingGroups -> public listing for the marketing site: scheduled
// sessions only, soonest first
func (gc *GroupController) GetUpcomingGroups(c *gin.Context) {
	var groups []models.GroupSession
	if err := gc.DB.Where("status = ?", models.GroupStatusProgramada).
		Order("session_date asc").Find(&groups).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Upcoming group sessions", groups)
}

// GetAllGroups -> list group photo-sessions, optionally by status
func (gc *GroupController) GetAllGroups(c *gin.Context) {
	query := gc.DB.Order("session_date desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var groups []models.GroupSession
	if err := query.Find(&groups).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of group sessions", groups)
}

// CreateGroup
func (gc *GroupController) CreateGroup(c *gin.Context) {
	type reqBody struct {
		Name        string `json:"name" binding:"required"`
		SessionDate string `json:"session_date" binding:"required"` // YYYY-MM-DD
		Location    string `json:"location"`
		Comments    string `json:"comments"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sessionDate, err := time.Parse("2006-01-02", req.SessionDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("session_date must be YYYY-MM-DD"))
		return
	}

	group := models.GroupSession{
		Name:        req.Name,
		SessionDate: sessionDate,
		Location:    req.Location,
		Status:      models.GroupStatusProgramada,
		Comments:    req.Comments,
	}

	if err := gc.DB.Create(&group).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Group session created: %s (%s)", group.Name, req.SessionDate)
	utils.RespondJSON(c, http.StatusCreated, "Group session created", group)
}

// GetGroupByID
func (gc *GroupController) GetGroupByID(c *gin.Context) {
	idStr := c.Param("group_id")
	id, _ := strconv.Atoi(idStr)

	var group models.GroupSession
	if err := gc.DB.First(&group, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Group session detail", group)
}

// UpdateGroup -> reschedule, relocate or change status
func (gc *GroupController) UpdateGroup(c *gin.Context) {
	idStr := c.Param("group_id")
	id, _ := strconv.Atoi(idStr)

	type reqBody struct {
		Name        *string `json:"name"`
		SessionDate *string `json:"session_date"`
		Location    *string `json:"location"`
		Status      *string `json:"status"`
		Comments    *string `json:"comments"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var group models.GroupSession
	if err := gc.DB.First(&group, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.SessionDate != nil {
		sessionDate, err := time.Parse("2006-01-02", *req.SessionDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("session_date must be YYYY-MM-DD"))
			return
		}
		group.SessionDate = sessionDate
	}
	if req.Location != nil {
		group.Location = *req.Location
	}
	if req.Status != nil {
		switch *req.Status {
		case models.GroupStatusProgramada, models.GroupStatusRealizada, models.GroupStatusCancelada:
			group.Status = *req.Status
		default:
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid group status"))
			return
		}
	}
	if req.Comments != nil {
		group.Comments = *req.Comments
	}

	if err := gc.DB.Save(&group).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Group session updated", group)
}

// DeleteGroup
func (gc *GroupController) DeleteGroup(c *gin.Context) {
	idStr := c.Param("group_id")
	id, _ := strconv.Atoi(idStr)

	if err := gc.DB.Delete(&models.GroupSession{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Group session deleted", gin.H{"group_id": id})
}
