// seed_vendors carga proveedores desde un CSV o XLSX y opcionalmente crea el usuario administrador.
//
// Uso:
//
//	go run ./cmd/seed_vendors -file proveedores.csv [-encoding latin1]
//	go run ./cmd/seed_vendors -file proveedores.xlsx -admin-email admin@empresa.co -admin-password ****
//
// La cabecera debe incluir vendor_code y name; contact_details y address son opcionales.
// Los códigos ya existentes se omiten, así que el comando puede repetirse.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Proveedores-api/internal/application/auth"
	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/application/usecase"
	"github.com/jhoicas/Proveedores-api/internal/domain"
	"github.com/jhoicas/Proveedores-api/internal/infrastructure/lock"
	"github.com/jhoicas/Proveedores-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Proveedores-api/pkg/config"
	"github.com/jhoicas/Proveedores-api/pkg/logger"
)

func main() {
	file := flag.String("file", "", "CSV o XLSX con los proveedores")
	encoding := flag.String("encoding", "utf-8", "codificación del CSV: utf-8 o latin1")
	adminEmail := flag.String("admin-email", "", "email del administrador a crear (opcional)")
	adminPassword := flag.String("admin-password", "", "password del administrador")
	adminName := flag.String("admin-name", "Administrador", "nombre del administrador")
	flag.Parse()

	if *file == "" && *adminEmail == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, App: "seed_vendors"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *adminEmail != "" {
		if len(*adminPassword) < 8 {
			log.Fatal().Msg("-admin-password debe tener al menos 8 caracteres")
		}
		authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{Secret: cfg.JWT.Secret})
		admin, err := authUC.CreateAdmin(ctx, *adminEmail, *adminPassword, *adminName)
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			log.Warn().Str("email", *adminEmail).Msg("el administrador ya existe; se omite")
		case err != nil:
			log.Fatal().Err(err).Msg("crear administrador")
		default:
			log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("administrador creado")
		}
	}

	if *file == "" {
		return
	}
	records, err := readRecords(*file, *encoding)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("leer archivo")
	}
	reqs, err := parseVendors(records)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("archivo inválido")
	}

	engine := performance.NewEngine(postgres.NewTxRunner(pool), lock.NewKeyedMutex(), performance.NewRecorder(),
		performance.WithLogger(log.Component("engine")))
	vendorUC := usecase.NewVendorUseCase(postgres.NewVendorRepository(pool), engine)

	var created, skipped int
	for _, req := range reqs {
		_, err := vendorUC.Create(ctx, req)
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			skipped++
			log.Debug().Str("vendor_code", req.VendorCode).Msg("proveedor existente; se omite")
		case err != nil:
			log.Fatal().Err(err).Str("vendor_code", req.VendorCode).Msg("crear proveedor")
		default:
			created++
		}
	}
	log.Info().Int("created", created).Int("skipped", skipped).Str("file", *file).Msg("carga de proveedores terminada")
}
