package server

import (
	"encoding/json"
	"net/http"

	"github.com/Daskott/keepme/contacts"
	"github.com/gorilla/mux"
)

type addContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type previewResponse struct {
	Phone       string `json:"phone"`
	Submittable bool   `json:"submittable"`
}

type emergencyResponse struct {
	Summary    string `json:"summary"`
	Recipients int    `json:"recipients"`
}

func (s *Server) health(rw http.ResponseWriter, r *http.Request) {
	json.NewEncoder(rw).Encode(ResponsePayload{Success: true})
}

func (s *Server) previewPhone(rw http.ResponseWriter, r *http.Request) {
	phone, ok := contacts.PreviewPhoneNumber(r.URL.Query().Get("phone"))
	json.NewEncoder(rw).Encode(ResponsePayload{
		Success: true,
		Data:    previewResponse{Phone: phone, Submittable: ok},
	})
}

func (s *Server) listContacts(rw http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := s.directory.ListContacts()
	s.mu.Unlock()

	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: list})
}

func (s *Server) addContact(rw http.ResponseWriter, r *http.Request) {
	data := addContactRequest{}

	err := json.NewDecoder(r.Body).Decode(&data)
	if err != nil {
		s.writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusBadRequest)
		return
	}

	err = s.validate.Struct(data)
	if err != nil {
		s.writeResponse(rw, ResponsePayload{Errors: validationMessages(err)}, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	contact, err := s.directory.AddContact(data.Name, data.Phone)
	s.mu.Unlock()

	if err != nil {
		s.writeError(rw, err)
		return
	}

	rw.WriteHeader(http.StatusCreated)
	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: contact})
}

func (s *Server) deleteContact(rw http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	contact, err := s.directory.RemoveContact(mux.Vars(r)["id"])
	s.mu.Unlock()

	if err != nil {
		s.writeError(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: contact})
}

func (s *Server) emergencySummary(rw http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	summary, err := s.directory.BuildEmergencySummary()
	recipients := s.directory.Len()
	s.mu.Unlock()

	if err != nil {
		s.writeError(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{
		Success: true,
		Data:    emergencyResponse{Summary: summary, Recipients: recipients},
	})
}

func (s *Server) sendEmergency(rw http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	summary, err := s.directory.BuildEmergencySummary()
	recipients := s.directory.Len()
	s.mu.Unlock()

	if err != nil {
		s.writeError(rw, err)
		return
	}

	err = s.dispatcher.Dispatch(r.Context(), summary)
	if err != nil {
		s.writeError(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{
		Success: true,
		Data:    emergencyResponse{Summary: summary, Recipients: recipients},
	})
}
