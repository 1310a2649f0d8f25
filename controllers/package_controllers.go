package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

type PackageController struct {
	DB *gorm.DB
}

func NewPackageController(db *gorm.DB) *PackageController {
	return &PackageController{DB: db}
}

// GetActivePackages -> public package catalog
func (pc *PackageController) GetActivePackages(c *gin.Context) {
	var packages []models.Package
	if err := pc.DB.Preload("Services").Preload("Services.Service").
		Where("active = ?", true).Order("name asc").Find(&packages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of packages", packages)
}

// GetAllPackages -> admin view including inactive bundles
func (pc *PackageController) GetAllPackages(c *gin.Context) {
	var packages []models.Package
	if err := pc.DB.Preload("Services").Preload("Services.Service").
		Order("name asc").Find(&packages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of packages", packages)
}

// CreatePackage -> bundle definition with member services
func (pc *PackageController) CreatePackage(c *gin.Context) {
	type serviceReq struct {
		ServiceID uint `json:"service_id" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	type reqBody struct {
		Name        string       `json:"name" binding:"required"`
		Description string       `json:"description"`
		Price       float64      `json:"price"`
		Services    []serviceReq `json:"services" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Price < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price cannot be negative"))
		return
	}
	if len(req.Services) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("a package needs at least one service"))
		return
	}

	pkg := models.Package{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      true,
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pkg).Error; err != nil {
			return err
		}
		for _, s := range req.Services {
			var service models.Service
			if err := tx.First(&service, s.ServiceID).Error; err != nil {
				return err
			}
			quantity := s.Quantity
			if quantity < 1 {
				quantity = 1
			}
			member := models.PackageService{
				PackageID: pkg.ID,
				ServiceID: service.ID,
				Quantity:  quantity,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Package created: %s (ID=%d)", pkg.Name, pkg.ID)
	utils.RespondJSON(c, http.StatusCreated, "Package created", pkg)
}

// UpdatePackage
func (pc *PackageController) UpdatePackage(c *gin.Context) {
	idStr := c.Param("package_id")
	id, _ := strconv.Atoi(idStr)

	var pkg models.Package
	if err := pc.DB.First(&pkg, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type reqBody struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Active      *bool    `json:"active"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("price cannot be negative"))
			return
		}
		pkg.Price = *req.Price
	}
	if req.Active != nil {
		pkg.Active = *req.Active
	}

	if err := pc.DB.Save(&pkg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Package updated", pkg)
}

// DeletePackage
func (pc *PackageController) DeletePackage(c *gin.Context) {
	idStr := c.Param("package_id")
	id, _ := strconv.Atoi(idStr)

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("package_id = ?", id).Delete(&models.PackageService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Package{}, id).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Package deleted", gin.H{"package_id": id})
}
