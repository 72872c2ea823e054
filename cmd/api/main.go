package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "microlend/internal/adapter/http"
	mw "microlend/internal/adapter/middleware"
	"microlend/internal/adapter/repository/mysql"
	"microlend/internal/config"
	"microlend/internal/infrastructure/cache"
	"microlend/internal/infrastructure/db"
	loanuc "microlend/internal/usecase/loan"
	protouc "microlend/internal/usecase/protocol"
	reputc "microlend/internal/usecase/reputation"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	loans := mysql.NewLoanRepository(gdb)
	reps := mysql.NewReputationRepository(gdb)
	proto := mysql.NewProtocolRepository(gdb)
	balances := mysql.NewBalanceRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	loanUC := loanuc.NewUsecase(loans, tx)
	repUC := reputc.NewUsecase(reps, tx)
	protoUC := protouc.NewUsecase(proto, tx)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC)
	repH := httpadp.NewReputationHandler(repUC)
	protoH := httpadp.NewProtocolHandler(protoUC)
	balH := httpadp.NewBalanceHandler(balances)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	e.GET("/health", h.Health)

	e.POST("/protocol/initialize", protoH.Initialize)
	e.GET("/protocol/config", protoH.GetConfig)
	e.PATCH("/protocol/config", protoH.UpdateConfig)

	e.POST("/reputations", repH.CreateReputation)
	e.GET("/reputations/:borrower_id", repH.GetReputation)
	e.POST("/reputations/:borrower_id/unfreeze", repH.Unfreeze)

	e.POST("/loans", loanH.CreateLoan)
	e.GET("/loans/:borrower_id", loanH.ListLoans)
	e.GET("/loans/:borrower_id/:loan_id", loanH.GetLoan)
	e.POST("/loans/:borrower_id/:loan_id/fund", loanH.FundLoan)
	e.POST("/loans/:borrower_id/:loan_id/withdraw", loanH.WithdrawLoan)
	e.POST("/loans/:borrower_id/:loan_id/repay", loanH.RepayLoan)
	e.POST("/loans/:borrower_id/:loan_id/default", loanH.MarkDefault)
	e.POST("/loans/:borrower_id/:loan_id/cancel", loanH.CancelLoan)

	e.POST("/balances/deposit", balH.Deposit)
	e.GET("/balances/:account", balH.GetBalance)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
