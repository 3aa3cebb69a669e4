package main

import (
	"time"

	"lixishop/internal/config"
	"lixishop/internal/domain/model"
	"lixishop/internal/handler"
	"lixishop/internal/infra/db"
	infraRepo "lixishop/internal/infra/repository"
	"lixishop/internal/mail"
	"lixishop/internal/server"
	"lixishop/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(username string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":      "admin",
		"username": username,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var log *zap.Logger
	if cfg.GoEnv == "prod" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Order{},
		&model.OrderItem{},
		&model.Product{},
		&model.Comment{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	//Repository（GORM実装）生成
	txManager := infraRepo.NewTxManagerGorm(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	commentRepo := infraRepo.NewCommentGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 24 * time.Hour,
	}

	//メール通知。SMTP未設定なら送らない
	var notifier usecase.OrderNotifier
	mailer := mail.NewService(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword,
		cfg.MailFrom, cfg.AdminEmail, log,
	)
	if mailer.Enabled() {
		notifier = mailer
	} else {
		log.Info("smtp is not configured, order notifications disabled")
	}

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(txManager, notifier, idGen, clock, log)
	statsUC := usecase.NewStatisticsUsecase(txManager)
	authUC := usecase.NewAuthUsecase(cfg.AdminUsername, cfg.AdminPasswordHash, issuer, clock)
	productUC := usecase.NewProductUsecase(productRepo, idGen, clock)
	commentUC := usecase.NewCommentUsecase(commentRepo, productRepo, idGen, clock)

	//Handler生成
	handlers := server.Handlers{
		Auth:       handler.NewAuthHandler(authUC),
		Order:      handler.NewOrderHandler(orderUC),
		Statistics: handler.NewStatisticsHandler(statsUC),
		Product:    handler.NewProductHandler(productUC),
		Comment:    handler.NewCommentHandler(commentUC),
	}

	//Server起動
	e := server.New(cfg, log)
	server.RegisterRoutes(e, cfg, handlers)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	log.Info("starting server", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
