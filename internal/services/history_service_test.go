package services_test

import (
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/cofflyze/cofflyze-api/internal/domain/errors"
	"github.com/cofflyze/cofflyze-api/internal/domain/valueobjects"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/logging"
	"github.com/cofflyze/cofflyze-api/internal/services"
)

var _ = Describe("HistoryService", func() {
	var (
		ctx     context.Context
		repo    *fakeHistoryRepo
		service *services.HistoryService
	)

	validInput := func() services.CreateHistoryInput {
		return services.CreateHistoryInput{
			Accuracy:    "0.92",
			DiseaseName: "LeafRust",
			Description: "Karat daun",
			Token:       "tok1",
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		repo = &fakeHistoryRepo{}

		// 2024-01-15 17:30:00 UTC = 2024-01-16 00:30:00 em Jacarta
		clock := fixedClock{t: time.Date(2024, 1, 15, 17, 30, 0, 0, time.UTC)}

		var err error
		service, err = services.NewHistoryService(repo, logging.NopLogger{}, clock, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("CreateHistory", func() {
		It("grava tanggal no horário de Jacarta", func() {
			entry, err := service.CreateHistory(ctx, validInput())

			Expect(err).NotTo(HaveOccurred())
			Expect(entry.CreatedAt).To(Equal("2024-01-16 00:30:00"))
			Expect(repo.entries).To(HaveLen(1))
			Expect(repo.entries[0].Cause).To(BeNil())
		})

		It("respeita o fuso configurado", func() {
			utc, err := valueobjects.LoadTimeZone("UTC")
			Expect(err).NotTo(HaveOccurred())
			service, err = services.NewHistoryService(repo, logging.NopLogger{}, fixedClock{t: time.Date(2024, 1, 15, 17, 30, 0, 0, time.UTC)}, utc)
			Expect(err).NotTo(HaveOccurred())

			entry, err := service.CreateHistory(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.CreatedAt).To(Equal("2024-01-15 17:30:00"))
		})

		DescribeTable("rejeita corpo inválido antes de chamar o banco",
			func(mutate func(*services.CreateHistoryInput), field string) {
				in := validInput()
				mutate(&in)

				_, err := service.CreateHistory(ctx, in)

				var ve *domainerrors.ValidationError
				Expect(err).To(BeAssignableToTypeOf(ve))
				Expect(err.(*domainerrors.ValidationError).Field).To(Equal(field))
				Expect(repo.calls).To(BeZero())
			},
			Entry("sem akurasi", func(in *services.CreateHistoryInput) { in.Accuracy = "" }, "akurasi"),
			Entry("sem nama_penyakit", func(in *services.CreateHistoryInput) { in.DiseaseName = " " }, "nama_penyakit"),
			Entry("nama_penyakit com 101 caracteres", func(in *services.CreateHistoryInput) { in.DiseaseName = strings.Repeat("a", 101) }, "nama_penyakit"),
			Entry("sem deskripsi", func(in *services.CreateHistoryInput) { in.Description = "" }, "deskripsi"),
			Entry("sem tokenFirebase", func(in *services.CreateHistoryInput) { in.Token = "" }, "tokenFirebase"),
		)

		It("aceita nama_penyakit com exatamente 100 caracteres", func() {
			in := validInput()
			in.DiseaseName = strings.Repeat("é", 100)

			_, err := service.CreateHistory(ctx, in)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("consultas", func() {
		BeforeEach(func() {
			_, err := service.CreateHistory(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())
		})

		It("lista por token vazio retorna lista vazia", func() {
			entries, err := service.ListHistoryByToken(ctx, "other")
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).NotTo(BeNil())
			Expect(entries).To(BeEmpty())
		})

		It("busca por token e id", func() {
			entry, err := service.GetHistory(ctx, "tok1", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.DiseaseName).To(Equal("LeafRust"))
		})

		It("token de outro usuário não encontra o registro", func() {
			_, err := service.GetHistory(ctx, "other", 1)
			Expect(err).To(MatchError(domainerrors.ErrHistoryNotFound))
		})

		It("remove por id e informa 404 na segunda vez", func() {
			Expect(service.DeleteHistory(ctx, 1)).To(Succeed())
			Expect(service.DeleteHistory(ctx, 1)).To(MatchError(domainerrors.ErrHistoryNotFound))
		})

		It("lista todos", func() {
			entries, err := service.ListHistory(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})
	})
})
