package service_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"employee-directory/internal/archive"
	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/models"
	"employee-directory/internal/service"
	"employee-directory/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type EmployeeCardServiceTestSuite struct {
	suite.Suite
	cardService *service.EmployeeCardService
}

func (suite *EmployeeCardServiceTestSuite) SetupTest() {
	suite.cardService = service.NewEmployeeCardService(archive.NewBuilder(), testutils.TestSite(), validator.New())
}

func validRequest() *service.CreateEmployeeCardRequest {
	return &service.CreateEmployeeCardRequest{
		FirstName:  "  Jane ",
		LastName:   "Van  Doe",
		Title:      "Staff Engineer",
		Department: "Platform",
		Email:      "jane@example.com",
		Phone:      "   ",
		LinkedIn:   "https://linkedin.com/in/jane",
		BioHTML:    "<p>Hello</p>",
	}
}

func headshot(name string) *service.Upload {
	return &service.Upload{Filename: name, Blob: archive.BytesBlob(pngHeader)}
}

func readZip(t *testing.T, content []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)

	files := make(map[string][]byte)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		files[f.Name] = data
	}
	return files
}

func (suite *EmployeeCardServiceTestSuite) TestBuildEmployeeCard_Success() {
	media := []service.Upload{{Filename: "team.gif", Blob: archive.BytesBlob("GIF89a")}}

	a, err := suite.cardService.BuildEmployeeCard(validRequest(), headshot("me.PNG"), media)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "jane-van-doe", a.Slug)
	assert.Equal(suite.T(), "jane-van-doe-employee-card.zip", a.Filename)

	files := readZip(suite.T(), a.Content)
	assert.Contains(suite.T(), files, "jane-van-doe/headshot.PNG")
	assert.Equal(suite.T(), []byte("GIF89a"), files["jane-van-doe/team.gif"])
	assert.Contains(suite.T(), string(files["jane-van-doe/contact.vcf"]), "FN:Jane Van  Doe\r\n")

	var rec models.EmployeeRecord
	require.NoError(suite.T(), json.Unmarshal(files["jane-van-doe/data.json"], &rec))
	assert.Equal(suite.T(), "jane-van-doe", rec.Slug)
	assert.Equal(suite.T(), "Jane", rec.FirstName)
	assert.Nil(suite.T(), rec.Phone)
	require.NotNil(suite.T(), rec.LinkedIn)
	assert.Equal(suite.T(), "https://linkedin.com/in/jane", *rec.LinkedIn)
	assert.Equal(suite.T(), "headshot.PNG", rec.Headshot)
	assert.Equal(suite.T(), []string{"team.gif"}, rec.Media)
}

func (suite *EmployeeCardServiceTestSuite) TestBuildEmployeeCard_SniffsHeadshotExtension() {
	a, err := suite.cardService.BuildEmployeeCard(validRequest(), headshot("blob"), nil)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "headshot.png", a.Record.Headshot)
	assert.Equal(suite.T(), []string{}, a.Record.Media)
}

func (suite *EmployeeCardServiceTestSuite) TestBuildEmployeeCard_StripsClientPaths() {
	media := []service.Upload{{Filename: "C/uploads/../photos/trip.jpg", Blob: archive.BytesBlob("x")}}

	a, err := suite.cardService.BuildEmployeeCard(validRequest(), headshot("me.png"), media)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), []string{"trip.jpg"}, a.Record.Media)
}

func (suite *EmployeeCardServiceTestSuite) TestBuildEmployeeCard_ValidationErrors() {
	tests := []struct {
		name   string
		mutate func(r *service.CreateEmployeeCardRequest)
		field  string
	}{
		{"missing first name", func(r *service.CreateEmployeeCardRequest) { r.FirstName = "  " }, "firstName"},
		{"missing last name", func(r *service.CreateEmployeeCardRequest) { r.LastName = "" }, "lastName"},
		{"missing title", func(r *service.CreateEmployeeCardRequest) { r.Title = "" }, "title"},
		{"missing department", func(r *service.CreateEmployeeCardRequest) { r.Department = "" }, "department"},
		{"invalid email", func(r *service.CreateEmployeeCardRequest) { r.Email = "not-an-email" }, "email"},
		{"phone with line break", func(r *service.CreateEmployeeCardRequest) { r.Phone = "555\nTEL:666" }, "phone"},
		{"phone with carriage return", func(r *service.CreateEmployeeCardRequest) { r.Phone = "555\r\nX-EVIL:1" }, "phone"},
		{"invalid linkedin", func(r *service.CreateEmployeeCardRequest) { r.LinkedIn = "linkedin" }, "linkedin"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := validRequest()
			tt.mutate(req)

			a, err := suite.cardService.BuildEmployeeCard(req, headshot("me.png"), nil)

			assert.Nil(suite.T(), a)
			var validationErr *apperrors.ValidationError
			require.ErrorAs(suite.T(), err, &validationErr)
			assert.Equal(suite.T(), tt.field, validationErr.Field)
		})
	}
}

func (suite *EmployeeCardServiceTestSuite) TestBuildEmployeeCard_PhoneOnSingleTELLine() {
	req := validRequest()
	req.Phone = "+1 (555) 010-0100"

	a, err := suite.cardService.BuildEmployeeCard(req, headshot("me.png"), nil)
	require.NoError(suite.T(), err)

	card := string(readZip(suite.T(), a.Content)["jane-van-doe/contact.vcf"])
	assert.Equal(suite.T(), 1, strings.Count(card, "TEL:"))
	assert.Contains(suite.T(), card, "\r\nTEL:+1 (555) 010-0100\r\nURL:")
	assert.Equal(suite.T(), strings.Count(card, "\n"), strings.Count(card, "\r\n"))
}

func (suite *EmployeeCardServiceTestSuite) TestBuildEmployeeCard_HeadshotRequired() {
	a, err := suite.cardService.BuildEmployeeCard(validRequest(), nil, nil)

	assert.Nil(suite.T(), a)
	assert.ErrorIs(suite.T(), err, apperrors.ErrHeadshotRequired)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *EmployeeCardServiceTestSuite) TestBuildEmployeeCard_MediaWithoutContent() {
	media := []service.Upload{{Filename: "a.png"}}

	_, err := suite.cardService.BuildEmployeeCard(validRequest(), headshot("me.png"), media)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *EmployeeCardServiceTestSuite) TestBuildEmployeeCard_UnreadableHeadshotIsPackagingError() {
	missing := &service.Upload{Filename: "me.png", Blob: archive.FileBlob("/nonexistent/me.png")}

	_, err := suite.cardService.BuildEmployeeCard(validRequest(), missing, nil)

	assert.True(suite.T(), apperrors.IsPackaging(err))
}

func TestEmployeeCardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeCardServiceTestSuite))
}
