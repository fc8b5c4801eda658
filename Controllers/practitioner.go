package Controllers

import (
	"log"
	"net/http"

	"DentaDesk/Models"
	"DentaDesk/Utils/Token"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// RegisterPractitioner creates the login user and the practitioner row
// together, scoped to the caller's clinic group.
func RegisterPractitioner(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		log.Println(err)
		c.String(http.StatusBadRequest, "Bad Request")
		c.Abort()
		return
	}

	user_id, _ := Token.ExtractTokenID(c)

	clinic_group_id, err := Models.GetUserClinicGroupID(user_id)
	if err != nil {
		log.Println(err)
	}
	input.ClinicGroupID = clinic_group_id
	if input.ClinicGroupID != 0 {
		exists, err := Models.ClinicGroupExists(input.ClinicGroupID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check clinic group"})
			return
		}
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Clinic group ID does not exist"})
			return
		}
	}

	user := Models.User{}

	user.Username = input.Username
	user.Password = input.Password
	user.Permission = 2
	user.ClinicGroupID = input.ClinicGroupID
	_, err = user.SaveUser()

	if err != nil {
		log.Println(err)
		c.String(http.StatusBadRequest, "Failed To Register User")
		c.Abort()
		return
	}

	var practitioner Models.Practitioner

	if err := c.ShouldBindBodyWith(&practitioner, binding.JSON); err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, err)
		return
	}
	practitioner.UserID = user.ID
	practitioner.ClinicGroupID = input.ClinicGroupID
	practitioner.Name = "Dr. " + input.Username
	if err := Models.DB.Model(&Models.Practitioner{}).Create(&practitioner).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Practitioner Registered Successfully"})
}

func GetPractitioners(c *gin.Context) {
	db := getScopedDB(c)
	var practitioners []Models.Practitioner
	if err := db.Model(&Models.Practitioner{}).Find(&practitioners).Error; err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, practitioners)
}

func DeletePractitioner(c *gin.Context) {
	var input struct {
		PractitionerID uint `json:"practitioner_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.Practitioner{}, "id = ?", input.PractitionerID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Practitioner Deleted Successfully",
	})
}
