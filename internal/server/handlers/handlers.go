package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ipmds/internal/analyzer"
	"ipmds/internal/model"
	"ipmds/internal/parser"
	"ipmds/internal/store"
)

// Handlers API处理器
type Handlers struct {
	store    *store.Store
	analyzer *analyzer.Analyzer
}

// NewHandlers 创建处理器
func NewHandlers(s *store.Store, a *analyzer.Analyzer) *Handlers {
	return &Handlers{store: s, analyzer: a}
}

// RegisterRoutes 注册路由
func (h *Handlers) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
	r.POST("/analyze", h.Analyze)
	r.GET("/projects/:id/units", h.ListProjectUnits)
	r.PUT("/projects/:id/units", h.ReplaceProjectUnits)
	r.GET("/analyze-logs", h.RecentAnalyzeLogs)
}

// Health 健康检查
// GET /api/health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Analyze 上传 Excel 并按模式分析
// POST /api/analyze  (multipart: file; form/query: mode, project_id)
func (h *Handlers) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无法读取上传文件"})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取文件失败"})
		return
	}

	mode := c.DefaultQuery("mode", c.DefaultPostForm("mode", analyzer.ModeSummary))

	switch mode {
	case analyzer.ModeSummary:
		h.analyzeSummary(c, fileHeader.Filename, content)
	case analyzer.ModeUnit:
		h.analyzeUnits(c, fileHeader.Filename, content)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "未知的分析模式: " + mode})
	}
}

func (h *Handlers) analyzeSummary(c *gin.Context, filename string, content []byte) {
	result, err := h.analyzer.AnalyzeSummary(content)
	if err != nil {
		h.analyzeError(c, err)
		return
	}

	h.writeLog(c, model.AnalyzeLog{
		ID:       uuid.New().String(),
		Filename: filename,
		Mode:     analyzer.ModeSummary,
		Rows:     result.Stats.Rows,
	})

	c.JSON(http.StatusOK, gin.H{
		"mode":         analyzer.ModeSummary,
		"summary_rows": result.SummaryRows,
		"stats":        result.Stats,
	})
}

func (h *Handlers) analyzeUnits(c *gin.Context, filename string, content []byte) {
	projectIDStr := c.DefaultQuery("project_id", c.PostForm("project_id"))
	projectID, err := strconv.ParseInt(projectIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit 模式必须提供 project_id"})
		return
	}

	result, err := h.analyzer.AnalyzeUnits(c.Request.Context(), content, projectID)
	if err != nil {
		h.analyzeError(c, err)
		return
	}

	h.writeLog(c, model.AnalyzeLog{
		ID:        uuid.New().String(),
		Filename:  filename,
		Mode:      analyzer.ModeUnit,
		ProjectID: projectID,
		Added:     result.Stats.Added,
		Modified:  result.Stats.Modified,
		Unchanged: result.Stats.Unchanged,
	})

	c.JSON(http.StatusOK, gin.H{
		"mode":          analyzer.ModeUnit,
		"added_rows":    result.AddedRows,
		"modified_rows": result.ModifiedRows,
		"stats":         result.Stats,
	})
}

// analyzeError 字段缺失属于可恢复的客户端错误，其余按服务端错误处理
func (h *Handlers) analyzeError(c *gin.Context, err error) {
	var mismatch *parser.SchemaMismatchError
	if errors.As(err, &mismatch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": mismatch.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// writeLog 分析日志写入失败不影响响应
func (h *Handlers) writeLog(c *gin.Context, l model.AnalyzeLog) {
	_ = h.store.InsertAnalyzeLog(c.Request.Context(), l)
}

// ListProjectUnits 获取项目参照房源
// GET /api/projects/:id/units
func (h *Handlers) ListProjectUnits(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目ID"})
		return
	}

	units, err := h.store.UnitsByProject(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if units == nil {
		units = []model.UnitRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"units": units, "total": len(units)})
}

// ReplaceProjectUnits 整体替换项目参照房源
// PUT /api/projects/:id/units
func (h *Handlers) ReplaceProjectUnits(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目ID"})
		return
	}

	var req struct {
		Units []model.UnitRecord `json:"units"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	if err := h.store.ReplaceProjectUnits(c.Request.Context(), projectID, req.Units); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	count, err := h.store.CountProjectUnits(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projectId": projectID, "total": count})
}

// RecentAnalyzeLogs 最近的分析日志
// GET /api/analyze-logs
func (h *Handlers) RecentAnalyzeLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	logs, err := h.store.RecentAnalyzeLogs(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if logs == nil {
		logs = []model.AnalyzeLog{}
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
