package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/SscSPs/slt_feedback_app/internal/apperrors"
	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
)

func (s *RoutesTestSuite) TestAdminRoutes_RejectNonAdmin() {
	w, body := s.serve(s.authAs(s.user, request(http.MethodGet, "/api/v1/admin/getAllUsers", nil)))

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Forbidden: Admins only", body.Message)
}

func (s *RoutesTestSuite) TestAdminRoutes_RequireToken() {
	w, _ := s.serve(request(http.MethodGet, "/api/v1/admin/getUserCounts", nil))

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RoutesTestSuite) TestAddUser() {
	req := dto.RegisterUserRequest{FullName: "New Person", Email: "new@example.com", Password: "pw"}
	s.userSvc.On("RegisterUser", mock.Anything, req).Return(&domain.User{
		UserID: "user-2", FullName: "New Person", Email: "new@example.com", Roles: []domain.Role{domain.RoleUser},
	}, nil).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodPost, "/api/v1/admin/addUser", req)))

	s.Equal(http.StatusCreated, w.Code)
	s.Equal("User created successfully", body.Message)
}

func (s *RoutesTestSuite) TestGetAllUsers_Paginates() {
	s.userSvc.On("ListUsers", mock.Anything, pagination.Page{Page: 2, Limit: 5}).
		Return([]domain.User{*s.user}, int64(12), nil).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodGet, "/api/v1/admin/getAllUsers?page=2&limit=5", nil)))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("All users fetched successfully", body.Message)
	var resp dto.ListUsersResponse
	s.Require().NoError(json.Unmarshal(body.Data, &resp))
	s.Len(resp.Users, 1)
	s.Equal(dto.PaginationMeta{Total: 12, Page: 2, Limit: 5, TotalPages: 3}, resp.Pagination)
}

func (s *RoutesTestSuite) TestGetAllUsers_BadQuery() {
	w, body := s.serve(s.authAs(s.admin, request(http.MethodGet, "/api/v1/admin/getAllUsers?page=abc", nil)))

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid request", body.Message)
}

func (s *RoutesTestSuite) TestUpdateUser() {
	updated := *s.user
	updated.FullName = "Renamed"
	s.userSvc.On("UpdateUser", mock.Anything, "user-1", mock.MatchedBy(func(r dto.UpdateUserRequest) bool {
		return r.FullName != nil && *r.FullName == "Renamed"
	})).Return(&updated, nil).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodPatch, "/api/v1/admin/updateUser/user-1", `{"fullname":"Renamed"}`)))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("User updated successfully", body.Message)
	s.Contains(string(body.Data), "Renamed")
}

func (s *RoutesTestSuite) TestUpdateUser_NotFound() {
	s.userSvc.On("UpdateUser", mock.Anything, "missing", mock.Anything).
		Return(nil, apperrors.NewNotFoundError("User not found")).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodPatch, "/api/v1/admin/updateUser/missing", `{"fullname":"x"}`)))

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("User not found", body.Message)
}

func (s *RoutesTestSuite) TestDeleteUser() {
	s.userSvc.On("DeleteUser", mock.Anything, "user-1").Return(nil).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodPatch, "/api/v1/admin/deleteUser/user-1", nil)))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("User deleted successfully", body.Message)
	s.Equal("null", string(body.Data))
}

func (s *RoutesTestSuite) TestDeleteUser_AlreadyDeleted() {
	s.userSvc.On("DeleteUser", mock.Anything, "user-1").
		Return(apperrors.NewNotFoundError("User not found or already deleted")).Once()

	w, body := s.serve(s.authAs(s.admin, request(http.MethodPatch, "/api/v1/admin/deleteUser/user-1", nil)))

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("User not found or already deleted", body.Message)
}
