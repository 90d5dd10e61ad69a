package httpx

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/rental-api/internal/service"
)

type PricingHandler struct {
	svc *service.PricingSvc
}

func NewPricingHandler(svc *service.PricingSvc) *PricingHandler {
	return &PricingHandler{svc: svc}
}

// GET /api/pricing/category/:categoryId
func (h *PricingHandler) Plans(c *gin.Context) {
	id, ok := paramID(c, "categoryId")
	if !ok {
		return
	}
	plans, err := h.svc.ActivePlans(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Err("Failed to load pricing plans"))
		return
	}
	out := make([]api.PricingPlan, 0, len(plans))
	for i := range plans {
		out = append(out, plans[i].API())
	}
	c.JSON(http.StatusOK, api.OK("Pricing plans retrieved successfully", out))
}

// GET /api/pricing/calculate?categoryId=&durationMonths=&kmPackage=
func (h *PricingHandler) Calculate(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Query("categoryId"), 10, 64)
	if err != nil || categoryID <= 0 {
		c.JSON(http.StatusBadRequest, api.Err("Invalid categoryId"))
		return
	}
	duration, err := strconv.Atoi(c.Query("durationMonths"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, api.Err("Invalid durationMonths"))
		return
	}
	km, err := strconv.Atoi(c.Query("kmPackage"))
	if err != nil || km <= 0 {
		c.JSON(http.StatusBadRequest, api.Err("Invalid kmPackage"))
		return
	}
	calc, err := h.svc.Calculate(c, categoryID, duration, km)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Err(err.Error()))
		return
	}
	c.JSON(http.StatusOK, api.OK("Price calculated successfully", calc))
}
