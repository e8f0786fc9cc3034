package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"employee-directory/internal/api/handlers"
	apperrors "employee-directory/internal/errors"
	"employee-directory/internal/mocks"
	"employee-directory/internal/render"
	"employee-directory/internal/service"
	"employee-directory/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProfileHandlerTestSuite defines the test suite for ProfileHandler
type ProfileHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockProfile *mocks.MockProfileServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *ProfileHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProfile = mocks.NewMockProfileServiceInterface(suite.ctrl)
	handler := handlers.NewProfileHandler(suite.mockProfile)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/profile", handler.GetProfile)
	suite.http.Router.GET("/employees/:slug/contact.vcf", handler.GetContactCard)
	suite.http.Router.GET("/employees/:slug/qrcode", handler.GetQRCode)
}

func (suite *ProfileHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProfileHandlerTestSuite) TestGetProfile_StatusCodes() {
	expectState := func(slug string, state *service.ProfileState) func() {
		return func() {
			suite.mockProfile.EXPECT().GetProfile(gomock.Any(), slug).Return(state)
		}
	}

	suite.http.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:    "found",
			Request: testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/profile?id=jane-doe"},
			Setup: expectState("jane-doe", &service.ProfileState{
				Status:  service.ProfileOK,
				Slug:    "jane-doe",
				Profile: &render.ProfileView{Slug: "jane-doe", DisplayName: "Jane Doe"},
			}),
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusOK},
		},
		{
			Name:    "missing id",
			Request: testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/profile"},
			Setup: expectState("", &service.ProfileState{
				Status:  service.ProfileMissingParameter,
				Message: "No employee specified",
			}),
			ExpectedResponse: testutils.MockHTTPResponse{
				Status: http.StatusBadRequest,
				Body:   map[string]interface{}{"status": "missing_parameter", "message": "No employee specified"},
			},
		},
		{
			Name:    "blank id is trimmed",
			Request: testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/profile?id=%20%20"},
			Setup: expectState("", &service.ProfileState{
				Status: service.ProfileMissingParameter,
			}),
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusBadRequest},
		},
		{
			Name:    "not found",
			Request: testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/profile?id=ghost"},
			Setup: expectState("ghost", &service.ProfileState{
				Status:  service.ProfileNotFound,
				Slug:    "ghost",
				Message: `Employee "ghost" not found`,
			}),
			ExpectedResponse: testutils.MockHTTPResponse{
				Status: http.StatusNotFound,
				Body:   map[string]interface{}{"status": "not_found", "slug": "ghost", "message": `Employee "ghost" not found`},
			},
		},
		{
			Name:             "malformed",
			Request:          testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/profile?id=broken"},
			Setup:            expectState("broken", &service.ProfileState{Status: service.ProfileMalformed, Slug: "broken"}),
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusBadGateway},
		},
		{
			Name:             "unavailable",
			Request:          testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/profile?id=far"},
			Setup:            expectState("far", &service.ProfileState{Status: service.ProfileUnavailable, Slug: "far"}),
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusBadGateway},
		},
	})
}

func (suite *ProfileHandlerTestSuite) TestGetContactCard_Success() {
	content := []byte("BEGIN:VCARD\r\nVERSION:3.0\r\nEND:VCARD\r\n")
	suite.mockProfile.EXPECT().GetContactCard(gomock.Any(), "jane-doe").
		Return(&service.ContactCardFile{Filename: "jane-doe.vcf", Content: content}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/employees/jane-doe/contact.vcf", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "text/vcard; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(suite.T(), `attachment; filename="jane-doe.vcf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(suite.T(), content, w.Body.Bytes())
}

func (suite *ProfileHandlerTestSuite) TestGetContactCard_Errors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperrors.NewLookupError("x", apperrors.LookupNotFound, nil), http.StatusNotFound},
		{"malformed", apperrors.NewLookupError("x", apperrors.LookupMalformed, errors.New("bad")), http.StatusBadGateway},
		{"transport", apperrors.NewLookupError("x", apperrors.LookupTransport, errors.New("reset")), http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockProfile.EXPECT().GetContactCard(gomock.Any(), "x").Return(nil, tt.err)

			w := suite.http.MakeRequest(http.MethodGet, "/employees/x/contact.vcf", nil)

			testutils.AssertErrorResponse(suite.T(), w, tt.status, tt.err.Error())
		})
	}
}

func (suite *ProfileHandlerTestSuite) TestGetQRCode_Success() {
	png := []byte("\x89PNG\r\n\x1a\n")
	suite.mockProfile.EXPECT().GetQRCode(gomock.Any(), "jane-doe", "large").Return(png, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/employees/jane-doe/qrcode?size=large", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "image/png", w.Header().Get("Content-Type"))
	assert.Equal(suite.T(), png, w.Body.Bytes())
}

func (suite *ProfileHandlerTestSuite) TestGetQRCode_InvalidSize() {
	suite.mockProfile.EXPECT().GetQRCode(gomock.Any(), "jane-doe", "huge").
		Return(nil, apperrors.NewValidationError("size", `must be "small" or "large"`))

	w := suite.http.MakeRequest(http.MethodGet, "/employees/jane-doe/qrcode?size=huge", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "size")
}

func (suite *ProfileHandlerTestSuite) TestGetQRCode_UnknownEmployee() {
	suite.mockProfile.EXPECT().GetQRCode(gomock.Any(), "ghost", "").
		Return(nil, apperrors.NewLookupError("ghost", apperrors.LookupNotFound, nil))

	w := suite.http.MakeRequest(http.MethodGet, "/employees/ghost/qrcode", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "not found")
}

func TestProfileHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}
