package Controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"DentaDesk/Models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// in-memory sqlite is per-connection
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Models.MigrateSchema(db))
	Models.DB = db

	router := gin.New()
	router.POST("/CreateQuote", CreateQuote)
	router.POST("/UpdateQuotePaymentStatus", UpdateQuotePaymentStatus)
	router.POST("/AcceptQuote", AcceptQuote)
	router.POST("/FetchCompensationEntries", FetchCompensationEntries)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createPlan(t *testing.T, treatments []Models.Treatment) Models.TreatmentPlan {
	t.Helper()
	patient := Models.Patient{Name: "Mario Rossi"}
	require.NoError(t, Models.DB.Create(&patient).Error)
	plan := Models.TreatmentPlan{
		PatientID:      patient.ID,
		PractitionerID: 1,
		Diagnosis:      "caries 26",
		Status:         Models.PlanStatusActive,
		Treatments:     treatments,
	}
	require.NoError(t, Models.DB.Create(&plan).Error)
	return plan
}

func TestCreateQuote_TotalIsSnapshotOfLineCosts(t *testing.T) {
	router := setupTestRouter(t)

	plan := createPlan(t, []Models.Treatment{
		{Description: "filling", ToothCode: "26", Cost: 50000, PrimaryPractitionerID: 1, PrimaryPercentage: 100},
		{Description: "crown", ToothCode: "11", Cost: 120000, PrimaryPractitionerID: 1, PrimaryPercentage: 100},
	})

	w := postJSON(router, "/CreateQuote", gin.H{"treatment_plan_id": plan.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		QuoteID uint   `json:"quote_id"`
		Number  string `json:"number"`
		Total   int64  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(170000), resp.Total)
	assert.Equal(t, fmt.Sprintf("PREV%d/0001", time.Now().Year()), resp.Number)

	var quote Models.Quote
	require.NoError(t, Models.DB.First(&quote, resp.QuoteID).Error)
	assert.Equal(t, Models.QuoteStatusQuoted, quote.Status)
	assert.Equal(t, Models.PaymentStatusUnpaid, quote.PaymentStatus)
	assert.Equal(t, plan.PatientID, quote.PatientID)
}

func TestCreateQuote_EmptyPlanQuotesAtZero(t *testing.T) {
	router := setupTestRouter(t)

	plan := createPlan(t, nil)

	w := postJSON(router, "/CreateQuote", gin.H{"treatment_plan_id": plan.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.Total)
}

func TestCreateQuote_PlanNotFound(t *testing.T) {
	router := setupTestRouter(t)

	w := postJSON(router, "/CreateQuote", gin.H{"treatment_plan_id": 9999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateQuote_NumbersIncreaseWithinYear(t *testing.T) {
	router := setupTestRouter(t)

	year := time.Now().Year()
	for i := 1; i <= 3; i++ {
		plan := createPlan(t, nil)
		w := postJSON(router, "/CreateQuote", gin.H{"treatment_plan_id": plan.ID})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Number string `json:"number"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, fmt.Sprintf("PREV%d/%04d", year, i), resp.Number)
	}
}

func paidQuoteFixture(t *testing.T, router *gin.Engine, treatments []Models.Treatment) Models.Quote {
	t.Helper()
	plan := createPlan(t, treatments)

	w := postJSON(router, "/CreateQuote", gin.H{"treatment_plan_id": plan.ID})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		QuoteID uint `json:"quote_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = postJSON(router, "/UpdateQuotePaymentStatus", gin.H{"quote_id": resp.QuoteID, "payment_status": "paid"})
	require.Equal(t, http.StatusOK, w.Code)

	var quote Models.Quote
	require.NoError(t, Models.DB.First(&quote, resp.QuoteID).Error)
	return quote
}

func TestMarkQuoteAsPaid_SplitsBetweenTwoPractitioners(t *testing.T) {
	router := setupTestRouter(t)

	secondary := uint(2)
	quote := paidQuoteFixture(t, router, []Models.Treatment{{
		Description:             "implant",
		Cost:                    100000,
		PrimaryPractitionerID:   1,
		SecondaryPractitionerID: &secondary,
		PrimaryPercentage:       60,
		SecondaryPercentage:     40,
	}})

	assert.Equal(t, Models.PaymentStatusPaid, quote.PaymentStatus)
	assert.NotEmpty(t, quote.PaymentReference)

	var entries []Models.CompensationEntry
	require.NoError(t, Models.DB.Where("quote_id = ?", quote.ID).Order("practitioner_id").Find(&entries).Error)
	require.Len(t, entries, 2)

	assert.Equal(t, uint(1), entries[0].PractitionerID)
	assert.Equal(t, int64(60000), entries[0].Amount)
	assert.Equal(t, uint(2), entries[1].PractitionerID)
	assert.Equal(t, int64(40000), entries[1].Amount)

	now := time.Now()
	assert.Equal(t, int(now.Month()), entries[0].Month)
	assert.Equal(t, now.Year(), entries[0].Year)
}

func TestMarkQuoteAsPaid_SinglePractitioner(t *testing.T) {
	router := setupTestRouter(t)

	quote := paidQuoteFixture(t, router, []Models.Treatment{{
		Description:           "extraction",
		Cost:                  50000,
		PrimaryPractitionerID: 5,
		PrimaryPercentage:     100,
	}})

	var entries []Models.CompensationEntry
	require.NoError(t, Models.DB.Where("quote_id = ?", quote.ID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(5), entries[0].PractitionerID)
	assert.Equal(t, int64(50000), entries[0].Amount)
}

func TestMarkQuoteAsPaid_Idempotent(t *testing.T) {
	router := setupTestRouter(t)

	quote := paidQuoteFixture(t, router, []Models.Treatment{{
		Description:           "filling",
		Cost:                  30000,
		PrimaryPractitionerID: 1,
		PrimaryPercentage:     100,
	}})

	// Second "paid" call must not duplicate the ledger
	w := postJSON(router, "/UpdateQuotePaymentStatus", gin.H{"quote_id": quote.ID, "payment_status": "paid"})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, Models.DB.Model(&Models.CompensationEntry{}).Where("quote_id = ?", quote.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateQuotePaymentStatus_UnpaidNeverFansOut(t *testing.T) {
	router := setupTestRouter(t)

	plan := createPlan(t, []Models.Treatment{{
		Description:           "filling",
		Cost:                  30000,
		PrimaryPractitionerID: 1,
		PrimaryPercentage:     100,
	}})

	w := postJSON(router, "/CreateQuote", gin.H{"treatment_plan_id": plan.ID})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		QuoteID uint `json:"quote_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = postJSON(router, "/UpdateQuotePaymentStatus", gin.H{"quote_id": resp.QuoteID, "payment_status": "unpaid"})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, Models.DB.Model(&Models.CompensationEntry{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpdateQuotePaymentStatus_RejectsUnknownStatus(t *testing.T) {
	router := setupTestRouter(t)

	plan := createPlan(t, nil)
	w := postJSON(router, "/CreateQuote", gin.H{"treatment_plan_id": plan.ID})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		QuoteID uint `json:"quote_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = postJSON(router, "/UpdateQuotePaymentStatus", gin.H{"quote_id": resp.QuoteID, "payment_status": "settled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateQuotePaymentStatus_QuoteNotFound(t *testing.T) {
	router := setupTestRouter(t)

	w := postJSON(router, "/UpdateQuotePaymentStatus", gin.H{"quote_id": 4242, "payment_status": "paid"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFetchCompensationEntries_FiltersByStoredFiscalPeriod(t *testing.T) {
	router := setupTestRouter(t)

	quote := paidQuoteFixture(t, router, []Models.Treatment{{
		Description:           "filling",
		Cost:                  30000,
		PrimaryPractitionerID: 1,
		PrimaryPercentage:     100,
	}})

	// A stray entry from another fiscal period must not match
	require.NoError(t, Models.DB.Create(&Models.CompensationEntry{
		PractitionerID: 1, QuoteID: quote.ID, BaseAmount: 1000, Percentage: 100, Amount: 1000,
		Month: 1, Year: 2000,
	}).Error)

	now := time.Now()
	w := postJSON(router, "/FetchCompensationEntries", gin.H{"month": int(now.Month()), "year": now.Year()})
	require.Equal(t, http.StatusOK, w.Code)

	var entries []Models.CompensationEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, int64(30000), entries[0].Amount)

	// Practitioner filter
	w = postJSON(router, "/FetchCompensationEntries", gin.H{"practitioner_id": 999})
	require.Equal(t, http.StatusOK, w.Code)
	entries = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 0)
}

func TestAcceptQuote_SetsStatusAndDate(t *testing.T) {
	router := setupTestRouter(t)

	plan := createPlan(t, nil)
	w := postJSON(router, "/CreateQuote", gin.H{"treatment_plan_id": plan.ID})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		QuoteID uint `json:"quote_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = postJSON(router, "/AcceptQuote", gin.H{"quote_id": resp.QuoteID})
	require.Equal(t, http.StatusOK, w.Code)

	var quote Models.Quote
	require.NoError(t, Models.DB.First(&quote, resp.QuoteID).Error)
	assert.Equal(t, Models.QuoteStatusAccepted, quote.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), quote.AcceptanceDate)
	// payment state untouched
	assert.Equal(t, Models.PaymentStatusUnpaid, quote.PaymentStatus)
}
