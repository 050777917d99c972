// test/fakeapi/server.go
package fakeapi

import (
	"crypto/rand"
	"net/http/httptest"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/pcbinspect/client/model"
)

type company struct {
	ID            int
	CorporateName string
	OwnerID       int
}

type user struct {
	ID           int
	CompanyID    int
	Email        string
	PasswordHash string
	Role         model.Role
	DeptName     string
	Name         string
	CreatedAt    time.Time
}

type project struct {
	model.Project
}

type material struct {
	model.Material
	ProjectID int
	AuthorID  int
	Excel     []byte
	ExcelName string
}

type comment struct {
	ID        int
	Material  int
	Author    int
	Parent    *int
	Content   string
	CreatedAt time.Time
}

type hook struct {
	failStatus int
	failBody   gin.H
	hold       chan struct{}
}

// Server is an in-memory stand-in for the inspection backend, served over httptest.
type Server struct {
	mu        sync.Mutex
	nextID    int
	companies map[int]*company
	users     map[int]*user
	projects  map[int]*project
	materials map[int]*material
	comments  map[int]*comment

	detections []model.Detection
	calls      map[string]int
	hooks      map[string]*hook
	jwtSecret  []byte

	engine *gin.Engine
	srv    *httptest.Server
}

func New() *Server {
	gin.SetMode(gin.TestMode)

	secret := make([]byte, 32)
	rand.Read(secret)

	s := &Server{
		nextID:    1,
		companies: make(map[int]*company),
		users:     make(map[int]*user),
		projects:  make(map[int]*project),
		materials: make(map[int]*material),
		comments:  make(map[int]*comment),
		calls:     make(map[string]int),
		hooks:     make(map[string]*hook),
		jwtSecret: secret,
		detections: []model.Detection{
			{DisplayID: 1, Name: "missing_hole", Class: 0, Confidence: 0.91, XMin: 10, YMin: 12, XMax: 40, YMax: 44},
			{DisplayID: 2, Name: "short", Class: 3, Confidence: 0.62, XMin: 100, YMin: 80, XMax: 130, YMax: 96},
		},
	}
	s.engine = s.routes()
	s.srv = httptest.NewServer(s.engine)
	return s
}

// URL is the API base URL, including the /api prefix.
func (s *Server) URL() string {
	return s.srv.URL + "/api"
}

func (s *Server) Close() {
	s.mu.Lock()
	for _, h := range s.hooks {
		if h.hold != nil {
			select {
			case <-h.hold:
			default:
				close(h.hold)
			}
		}
	}
	s.mu.Unlock()
	s.srv.Close()
}

func (s *Server) id() int {
	id := s.nextID
	s.nextID++
	return id
}

// AddUser registers a user, creating the company on first use, and returns the user id.
func (s *Server) AddUser(corporateName, email, password, name string, role model.Role) int {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.companyByName(corporateName)
	if c == nil {
		c = &company{ID: s.id(), CorporateName: corporateName}
		s.companies[c.ID] = c
	}
	u := &user{
		ID:           s.id(),
		CompanyID:    c.ID,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
		CreatedAt:    time.Now(),
	}
	if c.OwnerID == 0 {
		c.OwnerID = u.ID
	}
	s.users[u.ID] = u
	return u.ID
}

func (s *Server) AddProject(companyOfUser int, modelName string, status model.ProjectStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &project{model.Project{
		ID:        s.id(),
		CompanyID: s.users[companyOfUser].CompanyID,
		ModelName: modelName,
		Status:    status,
		CreatedAt: time.Now().Truncate(time.Second),
	}}
	s.projects[p.ID] = p
	return p.ID
}

func (s *Server) AddMaterial(projectID, authorID int, description string, excel []byte, excelName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addMaterialLocked(projectID, authorID, description, excel, excelName)
}

func (s *Server) AddComment(materialID, authorID int, parent *int, content string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &comment{ID: s.id(), Material: materialID, Author: authorID, Parent: parent, Content: content, CreatedAt: time.Now()}
	s.comments[c.ID] = c
	return c.ID
}

func (s *Server) ProjectStatus(projectID int) model.ProjectStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.projects[projectID]; ok {
		return p.Status
	}
	return ""
}

func (s *Server) HasProject(projectID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.projects[projectID]
	return ok
}

func (s *Server) HasComment(commentID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.comments[commentID]
	return ok
}

func (s *Server) UserRole(userID int) model.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		return u.Role
	}
	return ""
}

func (s *Server) ProjectNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var names []string
	for _, p := range s.projects {
		names = append(names, p.ModelName)
	}
	sort.Strings(names)
	return names
}

func (s *Server) MaterialCount(projectID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.materials {
		if m.ProjectID == projectID {
			n++
		}
	}
	return n
}

func (s *Server) SetDetections(d []model.Detection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detections = d
}

// Calls counts requests that reached the route, e.g. Calls("POST", "/projects/").
func (s *Server) Calls(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method+" "+path]
}

// TotalCalls counts every request that reached the server.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// Fail makes every following request to the route answer status with body {"error": message}.
func (s *Server) Fail(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.hookLocked(method, path)
	h.failStatus = status
	h.failBody = gin.H{"error": message}
}

// Recover undoes Fail for the route.
func (s *Server) Recover(method, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.hookLocked(method, path)
	h.failStatus = 0
	h.failBody = nil
}

// Hold parks requests to the route until the returned release func is called.
func (s *Server) Hold(method, path string) (release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.hookLocked(method, path)
	ch := make(chan struct{})
	h.hold = ch
	var once sync.Once
	return func() {
		once.Do(func() { close(ch) })
	}
}

func (s *Server) hookLocked(method, path string) *hook {
	key := method + " " + path
	h, ok := s.hooks[key]
	if !ok {
		h = &hook{}
		s.hooks[key] = h
	}
	return h
}

func (s *Server) companyByName(name string) *company {
	for _, c := range s.companies {
		if c.CorporateName == name {
			return c
		}
	}
	return nil
}

func (s *Server) userByEmail(email string) *user {
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *Server) sessionInfo(u *user) model.Session {
	info := model.Session{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		DeptName: u.DeptName,
	}
	if c, ok := s.companies[u.CompanyID]; ok {
		info.CompanyName = c.CorporateName
	}
	return info
}
