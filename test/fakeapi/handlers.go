// test/fakeapi/handlers.go
package fakeapi

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
)

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	api := r.Group("/api", s.instrument(), s.SessionAuth())
	api.POST("/login/", s.login)
	api.POST("/signup/", s.signup)
	api.POST("/logout/", s.logout)
	api.POST("/update-profile/", s.updateProfile)
	api.POST("/detect/", s.detect)
	api.OPTIONS("/detect/", func(c *gin.Context) {
		c.Header("Allow", "POST, OPTIONS")
		c.Status(http.StatusOK)
	})

	authed := api.Group("", RequireSession())
	authed.GET("/projects/", s.listProjects)
	authed.POST("/projects/", s.createProject)
	api.DELETE("/projects/", s.deleteProject)
	api.POST("/projects/status/", s.updateStatus)
	api.GET("/analysis-materials/", s.listMaterials)
	authed.POST("/upload-result/", s.uploadResult)
	api.GET("/download-performance/", s.downloadPerformance)
	authed.GET("/comments/", s.listComments)
	authed.POST("/comments/", s.createComment)
	authed.DELETE("/comments/", s.deleteComment)

	members := authed.Group("/company/members", RequireRole(model.RoleDirector))
	members.GET("/", s.listMembers)
	members.POST("/", s.updateMemberRole)

	return r
}

func (s *Server) login(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	s.mu.Lock()
	u := s.userByEmail(creds.Email)
	var info model.Session
	if u != nil {
		info = s.sessionInfo(u)
	}
	s.mu.Unlock()

	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		return
	}
	if err := s.issueSession(c, u); err != nil {
		RespondWithError(c, http.StatusInternalServerError, "failed to issue session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "user_info": info})
}

func (s *Server) signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": gin.H{"body": err.Error()}})
		return
	}
	if req.Role == "" {
		req.Role = model.RoleStaff
	}

	s.mu.Lock()
	exists := s.userByEmail(req.Email) != nil
	newCompany := s.companyByName(req.CorporateName) == nil
	s.mu.Unlock()

	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": gin.H{"email": "email already in use"}})
		return
	}
	if newCompany && req.Role == model.RoleStaff {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": gin.H{"corporate_name": "unknown company, STAFF cannot register a new one"}})
		return
	}

	id := s.AddUser(req.CorporateName, req.Email, req.Password, req.Name, req.Role)
	s.mu.Lock()
	s.users[id].DeptName = req.DeptName
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "company registered"})
}

func (s *Server) logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "logged out"})
}

func (s *Server) updateProfile(c *gin.Context) {
	var req model.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[req.UserID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if u.Name == req.Name && u.DeptName == req.DeptName {
		c.JSON(http.StatusOK, gin.H{"status": "no_change"})
		return
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	u.DeptName = req.DeptName
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "profile updated", "user_info": s.sessionInfo(u)})
}

func (s *Server) listProjects(c *gin.Context) {
	companyID := sessionCompanyID(c)

	s.mu.Lock()
	var out []model.Project
	for _, p := range s.projects {
		if p.CompanyID == companyID {
			proj := p.Project
			proj.CompanyID = 0
			out = append(out, proj)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if out == nil {
		out = []model.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": out})
}

func (s *Server) createProject(c *gin.Context) {
	var req model.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	s.mu.Lock()
	p := &project{model.Project{
		ID:        s.id(),
		CompanyID: sessionCompanyID(c),
		ModelName: req.ModelName,
		Status:    model.StatusPending,
		CreatedAt: time.Now().Truncate(time.Second),
	}}
	s.projects[p.ID] = p
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

func (s *Server) deleteProject(c *gin.Context) {
	var req model.DeleteProjectRequest
	_ = c.ShouldBindJSON(&req)

	if role := effectiveRole(c, req.UserRole); !role.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "no permission to delete"})
		return
	}
	id, ok := QueryInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	delete(s.projects, id)
	for mid, m := range s.materials {
		if m.ProjectID == id {
			delete(s.materials, mid)
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "project deleted"})
}

func (s *Server) updateStatus(c *gin.Context) {
	var req model.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	role := effectiveRole(c, req.UserRole)
	if !role.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("permission denied (role: %s)", role)})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[req.ProjectID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	p.Status = req.Status
	c.JSON(http.StatusOK, gin.H{"status": "success", "new_status": p.Status})
}

func (s *Server) listMaterials(c *gin.Context) {
	projectID, _ := QueryInt(c, "project_id")

	s.mu.Lock()
	var out []model.Material
	for _, m := range s.materials {
		if m.ProjectID == projectID {
			out = append(out, m.Material)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if out == nil {
		out = []model.Material{}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": out})
}

func (s *Server) addMaterialLocked(projectID, authorID int, description string, excel []byte, excelName string) int {
	id := s.id()
	stamp := time.Now().UnixNano()
	m := &material{
		Material: model.Material{
			ID:             id,
			DefectImageURL: fmt.Sprintf("/media/detected_results/pcb_%d_%d.jpg", projectID, stamp),
			Description:    description,
			CreatedAt:      time.Now().Truncate(time.Second),
		},
		ProjectID: projectID,
		AuthorID:  authorID,
		Excel:     excel,
		ExcelName: excelName,
	}
	if excelName != "" {
		m.PerformanceDataURL = fmt.Sprintf("/media/performance_data/%d_%s", stamp, excelName)
	}
	s.materials[id] = m
	return id
}

func (s *Server) uploadResult(c *gin.Context) {
	var req model.ResultUpload
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	imageData := req.ImageData
	if i := strings.Index(imageData, ","); i >= 0 {
		imageData = imageData[i+1:]
	}
	if _, err := base64.StdEncoding.DecodeString(imageData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "invalid image data"})
		return
	}
	excel, err := base64.StdEncoding.DecodeString(req.ExcelData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "invalid excel data"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[req.ProjectID]; !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "project does not exist"})
		return
	}
	s.addMaterialLocked(req.ProjectID, sessionUserID(c), req.Description, excel, req.ExcelName)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) downloadPerformance(c *gin.Context) {
	id, ok := QueryInt(c, "material_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "material_id is required"})
		return
	}

	s.mu.Lock()
	m, found := s.materials[id]
	s.mu.Unlock()

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "record not found"})
		return
	}
	if len(m.Excel) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "file missing on server"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", m.ExcelName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", m.Excel)
}

func (s *Server) commentJSON(cm *comment, withReplies bool) model.Comment {
	out := model.Comment{
		ID:        cm.ID,
		Material:  cm.Material,
		Author:    cm.Author,
		Parent:    cm.Parent,
		Content:   cm.Content,
		Replies:   []model.Comment{},
		CreatedAt: cm.CreatedAt,
	}
	if u, ok := s.users[cm.Author]; ok {
		out.AuthorName = u.Name
	}
	if withReplies && cm.Parent == nil {
		var replies []*comment
		for _, r := range s.comments {
			if r.Parent != nil && *r.Parent == cm.ID {
				replies = append(replies, r)
			}
		}
		sort.Slice(replies, func(i, j int) bool { return replies[i].ID < replies[j].ID })
		for _, r := range replies {
			out.Replies = append(out.Replies, s.commentJSON(r, false))
		}
	}
	return out
}

func (s *Server) listComments(c *gin.Context) {
	materialID, _ := QueryInt(c, "material_id")

	s.mu.Lock()
	var top []*comment
	for _, cm := range s.comments {
		if cm.Material == materialID && cm.Parent == nil {
			top = append(top, cm)
		}
	}
	sort.Slice(top, func(i, j int) bool { return top[i].ID < top[j].ID })
	out := make([]model.Comment, 0, len(top))
	for _, cm := range top {
		out = append(out, s.commentJSON(cm, true))
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": out})
}

func (s *Server) createComment(c *gin.Context) {
	var req model.CommentCreate
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.materials[req.Material]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "material not found"})
		return
	}
	if req.Parent != nil {
		parent, ok := s.comments[*req.Parent]
		if !ok || parent.Parent != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "replies can only target a top-level comment"})
			return
		}
	}
	cm := &comment{ID: s.id(), Material: req.Material, Author: sessionUserID(c), Parent: req.Parent, Content: req.Content, CreatedAt: time.Now()}
	s.comments[cm.ID] = cm
	c.JSON(http.StatusCreated, s.commentJSON(cm, true))
}

func (s *Server) deleteComment(c *gin.Context) {
	id, ok := QueryInt(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment id is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cm, found := s.comments[id]
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	if cm.Author != sessionUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the author can delete a comment"})
		return
	}
	delete(s.comments, id)
	for rid, r := range s.comments {
		if r.Parent != nil && *r.Parent == id {
			delete(s.comments, rid)
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) listMembers(c *gin.Context) {
	viewer := sessionUserID(c)
	companyID := sessionCompanyID(c)

	s.mu.Lock()
	var out []model.Member
	for _, u := range s.users {
		if u.CompanyID != companyID || u.ID == viewer {
			continue
		}
		out = append(out, model.Member{
			ID:            u.ID,
			Email:         u.Email,
			Name:          u.Name,
			Role:          u.Role,
			DeptName:      u.DeptName,
			CorporateName: s.companies[u.CompanyID].CorporateName,
		})
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if out == nil {
		out = []model.Member{}
	}
	// the members endpoint answers with a bare array
	c.JSON(http.StatusOK, out)
}

func (s *Server) updateMemberRole(c *gin.Context) {
	var req model.RoleUpdate
	if err := c.ShouldBindJSON(&req); err != nil || !req.NewRole.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"new_role": []string{"invalid choice"}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.users[req.TargetUserID]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user does not exist"})
		return
	}
	if target.CompanyID != sessionCompanyID(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user belongs to another company"})
		return
	}
	target.Role = req.NewRole
	c.JSON(http.StatusOK, gin.H{"message": "role updated"})
}

func (s *Server) detect(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "no image"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		RespondWithError(c, http.StatusInternalServerError, "failed to open image", err)
		return
	}
	defer f.Close()
	img, err := io.ReadAll(f)
	if err != nil {
		RespondWithError(c, http.StatusInternalServerError, "failed to read image", err)
		return
	}

	s.mu.Lock()
	detections := append([]model.Detection(nil), s.detections...)
	s.mu.Unlock()

	logger.Debug("Fake detection", zap.String("file", fh.Filename), zap.Int("bytes", len(img)))
	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"result_image": "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(img),
		"detections":   detections,
	})
}

// RespondWithError logs err and answers {"error": message}.
func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// QueryInt reads a positive integer query parameter.
func QueryInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
