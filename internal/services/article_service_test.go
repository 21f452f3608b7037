package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/cofflyze/cofflyze-api/internal/domain/errors"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/logging"
	"github.com/cofflyze/cofflyze-api/internal/services"
)

var _ = Describe("ArticleService", func() {
	var (
		ctx     context.Context
		repo    *fakeArticleRepo
		service *services.ArticleService
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newFakeArticleRepo()
		service = services.NewArticleService(repo, logging.NopLogger{})
	})

	It("cria e busca um artigo", func() {
		created, err := service.CreateArticle(ctx, services.ArticleInput{Title: "Karat Daun", Body: "..."})
		Expect(err).NotTo(HaveOccurred())

		found, err := service.GetArticle(ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Title).To(Equal("Karat Daun"))
		Expect(found.Photo).To(BeNil())
	})

	DescribeTable("rejeita título ou corpo vazio sem executar comando",
		func(in services.ArticleInput) {
			_, err := service.CreateArticle(ctx, in)
			Expect(domainerrors.IsValidation(err)).To(BeTrue())

			_, err = service.UpdateArticle(ctx, 1, in)
			Expect(domainerrors.IsValidation(err)).To(BeTrue())

			Expect(repo.calls).To(BeZero())
		},
		Entry("sem título", services.ArticleInput{Body: "x"}),
		Entry("sem corpo", services.ArticleInput{Title: "x"}),
	)

	It("update substitui todos os campos e zera a foto ausente", func() {
		created, err := service.CreateArticle(ctx, services.ArticleInput{Title: "a", Body: "b", Photo: strPtr("foto.png")})
		Expect(err).NotTo(HaveOccurred())

		updated, err := service.UpdateArticle(ctx, created.ID, services.ArticleInput{Title: "c", Body: "d"})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.ID).To(Equal(created.ID))
		Expect(repo.articles[created.ID].Photo).To(BeNil())
		Expect(repo.articles[created.ID].Title).To(Equal("c"))
	})

	It("update de id inexistente retorna 404", func() {
		_, err := service.UpdateArticle(ctx, 99, services.ArticleInput{Title: "a", Body: "b"})
		Expect(err).To(MatchError(domainerrors.ErrArticleNotFound))
	})

	It("delete de id inexistente retorna 404", func() {
		Expect(service.DeleteArticle(ctx, 99)).To(MatchError(domainerrors.ErrArticleNotFound))
	})

	It("get de id inexistente retorna 404", func() {
		_, err := service.GetArticle(ctx, 99)
		Expect(err).To(MatchError(domainerrors.ErrArticleNotFound))
	})

	It("lista vazia não é nil", func() {
		articles, err := service.ListArticles(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(articles).To(BeEmpty())
	})
})
