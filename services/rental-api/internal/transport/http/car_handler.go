package httpx

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
	"github.com/sarthakSixt/rental/services/rental-api/internal/service"
)

type CarHandler struct {
	svc *service.CatalogSvc
}

func NewCarHandler(svc *service.CatalogSvc) *CarHandler {
	return &CarHandler{svc: svc}
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.Err("Invalid "+name))
		return 0, false
	}
	return id, true
}

func apiCars(cars []domain.Car) []api.Car {
	out := make([]api.Car, 0, len(cars))
	for i := range cars {
		out = append(out, cars[i].API())
	}
	return out
}

// GET /api/cars
func (h *CarHandler) List(c *gin.Context) {
	cars, err := h.svc.Cars(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Err("Failed to load cars"))
		return
	}
	c.JSON(http.StatusOK, api.OK("Cars retrieved successfully", apiCars(cars)))
}

// GET /api/cars/:id
func (h *CarHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	car, err := h.svc.CarByID(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.Err(err.Error()))
		return
	}
	c.JSON(http.StatusOK, api.OK("Car retrieved successfully", car.API()))
}

// GET /api/cars/category/:categoryId
func (h *CarHandler) ByCategory(c *gin.Context) {
	id, ok := paramID(c, "categoryId")
	if !ok {
		return
	}
	cars, err := h.svc.CarsByCategory(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Err("Failed to load cars"))
		return
	}
	c.JSON(http.StatusOK, api.OK("Cars retrieved successfully", apiCars(cars)))
}

// GET /api/cars/brand/:brand
func (h *CarHandler) ByBrand(c *gin.Context) {
	brand := c.Param("brand")
	cars, err := h.svc.CarsByBrand(c, brand)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Err("Failed to load cars"))
		return
	}
	c.JSON(http.StatusOK, api.OK("Cars retrieved successfully", apiCars(cars)))
}

type CategoryHandler struct {
	svc *service.CatalogSvc
}

func NewCategoryHandler(svc *service.CatalogSvc) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.svc.Categories(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Err("Failed to load categories"))
		return
	}
	out := make([]api.Category, 0, len(cats))
	for i := range cats {
		out = append(out, cats[i].API())
	}
	c.JSON(http.StatusOK, api.OK("Categories retrieved successfully", out))
}

// GET /api/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	cat, err := h.svc.CategoryByID(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.Err(err.Error()))
		return
	}
	c.JSON(http.StatusOK, api.OK("Category retrieved successfully", cat.API()))
}
