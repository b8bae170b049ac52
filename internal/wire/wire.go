package wire

import (
	"Kolhub/internal/api"
	"Kolhub/internal/api/config"
	"Kolhub/internal/api/handler"
	"Kolhub/internal/repository"
	"Kolhub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	kolRepo := repository.NewKOLRepo(db)
	kolService := service.NewKOLService(kolRepo)

	handlers := &api.HandlersGroup{
		KOLHandler: handler.NewKOLHandler(kolService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
