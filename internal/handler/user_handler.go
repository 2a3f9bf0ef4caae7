package handlers

import (
	"net/http"
)

func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	// forming the response
	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
	}

	WriteSuccess(w, response, http.StatusOK)
}
