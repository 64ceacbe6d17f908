package venue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohanKadam-7/boxgames/internal/common"
	"github.com/RohanKadam-7/boxgames/pkg/utils"
)

type VenueController struct {
	repo VenueRepository
}

func NewVenueController(repo VenueRepository) *VenueController {
	return &VenueController{repo: repo}
}

// ---- public browsing ----

// GetVenues godoc
// @Summary List all venues
// @Tags venues
// @Produce json
// @Success 200 {array} Venue
// @Router /venues [get]
func (vc *VenueController) GetVenues(c *gin.Context) {
	venues, err := vc.repo.ListVenues()
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}

// GetVenue godoc
// @Summary Get venue by ID
// @Tags venues
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Success 200 {object} Venue
// @Failure 404 {object} utils.ErrorResponse
// @Router /venues/{venue_id} [get]
func (vc *VenueController) GetVenue(c *gin.Context) {
	v, err := vc.repo.GetVenueByID(c.Param("venue_id"))
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// GetVenueGrounds godoc
// @Summary List grounds of a venue
// @Tags venues
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Success 200 {array} Ground
// @Router /venues/{venue_id}/grounds [get]
func (vc *VenueController) GetVenueGrounds(c *gin.Context) {
	grounds, err := vc.repo.ListGroundsByVenue(c.Param("venue_id"))
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, grounds)
}

// GetGroundSlots godoc
// @Summary List slots of a ground
// @Tags venues
// @Produce json
// @Param ground_id path string true "Ground ID"
// @Param slot_date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {array} Slot
// @Router /grounds/{ground_id}/slots [get]
func (vc *VenueController) GetGroundSlots(c *gin.Context) {
	slots, err := vc.repo.ListSlotsByGround(c.Param("ground_id"), c.Query("slot_date"))
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// ---- owner operations ----

// CreateVenue godoc
// @Summary Create a venue
// @Tags owner
// @Accept json
// @Produce json
// @Param venue body VenueInput true "Venue details"
// @Success 201 {object} Venue
// @Failure 400 {object} utils.ErrorResponse
// @Router /owner/venues [post]
// @Security Bearer
func (vc *VenueController) CreateVenue(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input VenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(c, err.Error())
		return
	}

	v := &Venue{
		Name:     input.Name,
		Location: input.Location,
		ImageURL: input.ImageURL,
		OwnerID:  principal.Email,
	}
	if err := vc.repo.CreateVenue(v); err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// GetOwnerVenues godoc
// @Summary List the caller's venues
// @Tags owner
// @Produce json
// @Success 200 {array} Venue
// @Router /owner/venues [get]
// @Security Bearer
func (vc *VenueController) GetOwnerVenues(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	venues, err := vc.repo.ListVenuesByOwner(principal.Email)
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}

// UpdateVenue godoc
// @Summary Update a venue
// @Tags owner
// @Accept json
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Param venue body VenueInput true "Updated venue details"
// @Success 200 {object} Venue
// @Failure 404 {object} utils.ErrorResponse "Venue absent or not owned by caller"
// @Router /owner/venues/{venue_id} [put]
// @Security Bearer
func (vc *VenueController) UpdateVenue(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input VenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(c, err.Error())
		return
	}

	v, err := vc.repo.UpdateVenue(c.Param("venue_id"), principal.Email, input)
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DeleteVenue godoc
// @Summary Delete a venue and everything under it
// @Tags owner
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse "Venue absent or not owned by caller"
// @Router /owner/venues/{venue_id} [delete]
// @Security Bearer
func (vc *VenueController) DeleteVenue(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := vc.repo.DeleteVenue(c.Param("venue_id"), principal.Email); err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	utils.SuccessJSON(c, http.StatusOK, "Venue deleted successfully")
}

// CreateGround godoc
// @Summary Add a ground to an owned venue
// @Tags owner
// @Accept json
// @Produce json
// @Param ground body GroundInput true "Ground details"
// @Success 201 {object} Ground
// @Failure 404 {object} utils.ErrorResponse "Venue absent or not owned by caller"
// @Router /owner/grounds [post]
// @Security Bearer
func (vc *VenueController) CreateGround(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input GroundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(c, err.Error())
		return
	}

	g := &Ground{Name: input.Name, VenueID: input.VenueID}
	if err := vc.repo.CreateGround(principal.Email, g); err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// GetOwnerGrounds godoc
// @Summary List grounds across the caller's venues
// @Tags owner
// @Produce json
// @Success 200 {array} Ground
// @Router /owner/grounds [get]
// @Security Bearer
func (vc *VenueController) GetOwnerGrounds(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	grounds, err := vc.repo.ListGroundsByOwner(principal.Email)
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, grounds)
}

// DeleteGround godoc
// @Summary Delete a ground
// @Tags owner
// @Produce json
// @Param ground_id path string true "Ground ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse "Ground belongs to someone else's venue"
// @Failure 404 {object} utils.ErrorResponse "Ground does not exist"
// @Router /owner/grounds/{ground_id} [delete]
// @Security Bearer
func (vc *VenueController) DeleteGround(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := vc.repo.DeleteGround(c.Param("ground_id"), principal.Email); err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	utils.SuccessJSON(c, http.StatusOK, "Ground deleted successfully")
}

// CreateSlot godoc
// @Summary Publish a bookable slot on an owned ground
// @Tags owner
// @Accept json
// @Produce json
// @Param slot body SlotInput true "Slot details"
// @Success 201 {object} Slot
// @Failure 403 {object} utils.ErrorResponse "Ground belongs to someone else's venue"
// @Failure 404 {object} utils.ErrorResponse "Ground does not exist"
// @Router /owner/slots [post]
// @Security Bearer
func (vc *VenueController) CreateSlot(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input SlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(c, err.Error())
		return
	}

	s := &Slot{
		GroundID:  input.GroundID,
		SlotDate:  input.SlotDate,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Price:     input.Price,
	}
	if err := vc.repo.CreateSlot(principal.Email, s); err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// GetOwnerSlots godoc
// @Summary List slots across the caller's venues
// @Tags owner
// @Produce json
// @Success 200 {array} Slot
// @Router /owner/slots [get]
// @Security Bearer
func (vc *VenueController) GetOwnerSlots(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	slots, err := vc.repo.ListSlotsByOwner(principal.Email)
	if err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// DeleteSlot godoc
// @Summary Delete a slot
// @Tags owner
// @Produce json
// @Param slot_id path string true "Slot ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /owner/slots/{slot_id} [delete]
// @Security Bearer
func (vc *VenueController) DeleteSlot(c *gin.Context) {
	principal, err := common.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := vc.repo.DeleteSlot(c.Param("slot_id"), principal.Email); err != nil {
		utils.DomainErrorJSON(c, err)
		return
	}
	utils.SuccessJSON(c, http.StatusOK, "Slot deleted successfully")
}
