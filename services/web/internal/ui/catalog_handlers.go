package ui

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/pkg/api"
)

func (s *Server) home(c *gin.Context) {
	cats, err := s.gw.Categories(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "home", gin.H{"Categories": cats})
}

// carList shows the fleet, optionally narrowed by category or brand. The two
// filters are mutually exclusive; category wins when both are present.
func (s *Server) carList(c *gin.Context) {
	var (
		cars []api.Car
		err  error
	)
	categoryID, _ := strconv.ParseInt(c.Query("categoryId"), 10, 64)
	brand := c.Query("brand")
	switch {
	case categoryID > 0:
		cars, err = s.gw.CarsByCategory(c, categoryID)
	case brand != "":
		cars, err = s.gw.CarsByBrand(c, brand)
	default:
		cars, err = s.gw.Cars(c)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	cats, err := s.gw.Categories(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "cars", gin.H{
		"Cars":       cars,
		"Categories": cats,
		"CategoryID": categoryID,
		"Brand":      brand,
	})
}

func (s *Server) carDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		s.render(c, http.StatusNotFound, "error", gin.H{"Message": "Car not found"})
		return
	}
	car, err := s.gw.CarByID(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	plans, err := s.gw.PricingPlans(c, car.Category.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "car_detail", gin.H{
		"Car":       car,
		"Plans":     plans,
		"Available": car.Status == api.CarAvailable,
	})
}
