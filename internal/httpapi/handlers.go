package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/saltastro/saltuser/pkg/saltuser"
	"github.com/saltastro/saltuser/pkg/types"
)

// loginRequest is the body of POST /api/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// rolesResponse is the body of GET /api/users/{userID}/roles.
type rolesResponse struct {
	UserID int64                 `json:"user_id"`
	Admin  bool                  `json:"admin"`
	Board  bool                  `json:"board"`
	TACs   []types.TACMembership `json:"tacs"`
}

// proposalPermissions is the body of
// GET /api/users/{userID}/permissions/proposals/{proposalCode}.
type proposalPermissions struct {
	ProposalCode          string `json:"proposal_code"`
	Investigator          bool   `json:"investigator"`
	PrincipalInvestigator bool   `json:"principal_investigator"`
	PrincipalContact      bool   `json:"principal_contact"`
	TACMember             bool   `json:"tac_member"`
	MayView               bool   `json:"may_view"`
	MayEdit               bool   `json:"may_edit"`
}

// blockPermissions is the body of
// GET /api/users/{userID}/permissions/blocks/{blockID}.
type blockPermissions struct {
	BlockID int64 `json:"block_id"`
	MayView bool  `json:"may_view"`
	MayEdit bool  `json:"may_edit"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := saltuser.Verify(req.Username, req.Password, s.store)
	if errors.Is(err, types.ErrInvalidCredentials) {
		s.writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, ok := s.user(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, types.User{
		UserID:     u.ID(),
		GivenName:  u.GivenName(),
		FamilyName: u.FamilyName(),
		Email:      u.Email(),
	})
}

func (s *Server) handleGetRoles(w http.ResponseWriter, r *http.Request) {
	u, ok := s.user(w, r)
	if !ok {
		return
	}

	admin, err := u.IsAdmin()
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	board, err := u.IsBoardMember()
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, rolesResponse{
		UserID: u.ID(),
		Admin:  admin,
		Board:  board,
		TACs:   u.TACMemberships(),
	})
}

func (s *Server) handleProposalPermissions(w http.ResponseWriter, r *http.Request) {
	u, ok := s.user(w, r)
	if !ok {
		return
	}
	proposalCode := chi.URLParam(r, "proposalCode")

	resp := proposalPermissions{ProposalCode: proposalCode}
	var err error

	if resp.Investigator, err = u.IsInvestigator(proposalCode); err != nil {
		s.serverError(w, r, err)
		return
	}
	if resp.PrincipalInvestigator, err = u.IsPrincipalInvestigator(proposalCode); err != nil {
		s.serverError(w, r, err)
		return
	}
	if resp.PrincipalContact, err = u.IsPrincipalContact(proposalCode); err != nil {
		s.serverError(w, r, err)
		return
	}
	if resp.TACMember, err = u.IsProposalTACMember(proposalCode); err != nil {
		s.serverError(w, r, err)
		return
	}
	if resp.MayView, err = u.MayViewProposal(proposalCode); err != nil {
		s.serverError(w, r, err)
		return
	}
	if resp.MayEdit, err = u.MayEditProposal(proposalCode); err != nil {
		s.serverError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBlockPermissions(w http.ResponseWriter, r *http.Request) {
	u, ok := s.user(w, r)
	if !ok {
		return
	}

	blockID, err := strconv.ParseInt(chi.URLParam(r, "blockID"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid block id")
		return
	}

	resp := blockPermissions{BlockID: blockID}

	resp.MayView, err = u.MayViewBlock(blockID)
	if errors.Is(err, types.ErrBlockNotFound) {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	if resp.MayEdit, err = u.MayEditBlock(blockID); err != nil {
		s.serverError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// user resolves the {userID} URL parameter to a saltuser.User, writing
// the error response itself when resolution fails.
func (s *Server) user(w http.ResponseWriter, r *http.Request) (*saltuser.User, bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid user id")
		return nil, false
	}

	u, err := saltuser.New(userID, s.store)
	if errors.Is(err, types.ErrUserNotFound) {
		s.writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	if err != nil {
		s.serverError(w, r, err)
		return nil, false
	}
	return u, true
}

// serverError logs the error and writes a 500 response.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", reqID(r.Context())),
		zap.Error(err),
	)
	s.writeError(w, http.StatusInternalServerError, "internal error")
}
