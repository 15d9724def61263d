package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-api/config"
	"github.com/yeremiapane/restaurant-api/database"
	"github.com/yeremiapane/restaurant-api/kds"
	"github.com/yeremiapane/restaurant-api/router"
	"github.com/yeremiapane/restaurant-api/utils"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestAPI(t *testing.T, publisher kds.Publisher) *testAPI {
	utils.InitLogger()

	cfg := &config.Config{
		AppEnv:        "test",
		DBDriver:      "sqlite",
		DBDSN:         fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_")),
		PublicBaseURL: "http://restaurant.test",
	}
	db, err := config.InitDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	return &testAPI{
		db:     db,
		router: router.SetupRouter(db, router.Options{Config: cfg, Publisher: publisher}),
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}
