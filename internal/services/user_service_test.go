package services_test

import (
	"context"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
	domainerrors "github.com/cofflyze/cofflyze-api/internal/domain/errors"
	"github.com/cofflyze/cofflyze-api/internal/domain/valueobjects"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/logging"
	"github.com/cofflyze/cofflyze-api/internal/services"
)

var _ = Describe("UserService", func() {
	var (
		ctx     context.Context
		repo    *fakeUserRepo
		store   *fakeStorage
		uow     *fakeUnitOfWork
		service *services.UserService
		now     time.Time
	)

	photo := func(name, body string) *services.PhotoUpload {
		return &services.PhotoUpload{
			Filename:    name,
			ContentType: "image/png",
			Size:        int64(len(body)),
			Content:     strings.NewReader(body),
		}
	}

	seedUser := func(token string, photoKey string) *entities.User {
		user := &entities.User{
			FullName: "Budi Santoso",
			Gender:   valueobjects.GenderMale,
			Token:    strPtr(token),
		}
		if photoKey != "" {
			user.PhotoURL = photoURL(photoKey)
			store.objects[photoKey] = storedObject{body: "old"}
		}
		Expect(repo.Create(ctx, user)).To(Succeed())
		return user
	}

	BeforeEach(func() {
		ctx = context.Background()
		repo = newFakeUserRepo()
		store = newFakeStorage()
		uow = &fakeUnitOfWork{}
		now = time.UnixMilli(1700000000000)
		service = services.NewUserService(repo, store, uow, logging.NopLogger{}, fixedClock{t: now}, 16)
	})

	Describe("CreateUser", func() {
		It("envia a foto e grava a URL pública", func() {
			user, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName: "Siti",
				Gender:   "Perempuan",
				Token:    strPtr("tok1"),
				Photo:    photo("pic.png", "png"),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(BeNumerically(">", 0))
			Expect(*user.PhotoURL).To(Equal("https://storage.googleapis.com/cofflyze-images/fotoProfile/1700000000000_pic.png"))
			Expect(store.objects).To(HaveKeyWithValue("fotoProfile/1700000000000_pic.png", storedObject{body: "png", contentType: "image/png"}))
		})

		It("exige a foto", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{FullName: "Siti", Gender: "Perempuan"})

			Expect(err).To(MatchError(domainerrors.ErrPhotoRequired))
			Expect(repo.users).To(BeEmpty())
		})

		It("rejeita foto acima do limite sem enviar nada", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{
				FullName: "Siti",
				Gender:   "Perempuan",
				Photo:    photo("big.png", strings.Repeat("x", 17)),
			})

			Expect(err).To(MatchError(domainerrors.ErrPhotoTooLarge))
			Expect(store.keys()).To(BeEmpty())
		})

		It("valida nome antes do gênero", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{Gender: "x", Photo: photo("a.png", "a")})

			var ve *domainerrors.ValidationError
			Expect(err).To(BeAssignableToTypeOf(ve))
			Expect(err.(*domainerrors.ValidationError).Field).To(Equal("namaLengkap"))
		})

		It("rejeita gênero fora do enum", func() {
			_, err := service.CreateUser(ctx, services.CreateUserInput{FullName: "Siti", Gender: "x", Photo: photo("a.png", "a")})

			Expect(domainerrors.IsValidation(err)).To(BeTrue())
			Expect(err).To(MatchError(valueobjects.ErrInvalidGender))
		})

		It("falha no upload não insere linha", func() {
			store.uploadErr = errBoom

			_, err := service.CreateUser(ctx, services.CreateUserInput{FullName: "Siti", Gender: "Perempuan", Photo: photo("a.png", "a")})

			Expect(err).To(MatchError(domainerrors.ErrUploadFailed))
			Expect(repo.users).To(BeEmpty())
		})

		It("remove o objeto enviado quando o INSERT falha", func() {
			repo.createErr = errBoom

			_, err := service.CreateUser(ctx, services.CreateUserInput{FullName: "Siti", Gender: "Perempuan", Photo: photo("a.png", "a")})

			Expect(err).To(MatchError(errBoom))
			Expect(store.deleted).To(ConsistOf("fotoProfile/1700000000000_a.png"))
			Expect(store.keys()).To(BeEmpty())
		})
	})

	Describe("GetUserByToken", func() {
		It("retorna o usuário do token", func() {
			seedUser("tok1", "")

			user, err := service.GetUserByToken(ctx, "tok1")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.FullName).To(Equal("Budi Santoso"))
		})

		It("exige token", func() {
			_, err := service.GetUserByToken(ctx, "  ")
			Expect(err).To(MatchError(domainerrors.ErrTokenRequired))
		})

		It("retorna não encontrado", func() {
			_, err := service.GetUserByToken(ctx, "nope")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("UpdateUser", func() {
		input := func() services.UpdateUserInput {
			return services.UpdateUserInput{
				FullName:    "Budi S.",
				Gender:      "Laki-laki",
				PhoneNumber: strPtr("0812"),
				Address:     strPtr("Bandung"),
			}
		}

		It("sem foto preserva fotoProfile e atualiza o resto", func() {
			existing := seedUser("tok1", "fotoProfile/1_old.png")

			url, err := service.UpdateUser(ctx, "tok1", input())

			Expect(err).NotTo(HaveOccurred())
			Expect(url).To(BeNil())
			stored := repo.users[existing.ID]
			Expect(stored.FullName).To(Equal("Budi S."))
			Expect(*stored.Address).To(Equal("Bandung"))
			Expect(*stored.PhotoURL).To(Equal(*existing.PhotoURL))
			Expect(store.deleted).To(BeEmpty())
		})

		It("com foto troca a URL e apaga a foto anterior", func() {
			existing := seedUser("tok1", "fotoProfile/1_old.png")
			in := input()
			in.Photo = photo("new.png", "new")

			url, err := service.UpdateUser(ctx, "tok1", in)

			Expect(err).NotTo(HaveOccurred())
			Expect(*url).To(Equal("https://storage.googleapis.com/cofflyze-images/fotoProfile/1700000000000_new.png"))
			Expect(*repo.users[existing.ID].PhotoURL).To(Equal(*url))
			Expect(store.keys()).To(Equal([]string{"fotoProfile/1700000000000_new.png"}))
		})

		It("token inexistente com foto retorna 404 sem enviar nada", func() {
			in := input()
			in.Photo = photo("new.png", "new")

			_, err := service.UpdateUser(ctx, "missing", in)

			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
			Expect(store.keys()).To(BeEmpty())
			Expect(repo.updates).To(BeZero())
		})

		It("token inexistente sem foto retorna 404 sem alterar linhas", func() {
			existing := seedUser("tok1", "")

			_, err := service.UpdateUser(ctx, "missing", input())

			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
			Expect(repo.users[existing.ID].FullName).To(Equal("Budi Santoso"))
		})

		It("token vazio é rejeitado", func() {
			_, err := service.UpdateUser(ctx, "", input())
			Expect(err).To(MatchError(domainerrors.ErrTokenRequired))
		})

		It("valida o corpo antes de qualquer acesso", func() {
			seedUser("tok1", "")
			in := input()
			in.FullName = ""

			_, err := service.UpdateUser(ctx, "tok1", in)

			Expect(domainerrors.IsValidation(err)).To(BeTrue())
			Expect(repo.updates).To(BeZero())
		})

		It("falha no upload retorna erro sem UPDATE", func() {
			seedUser("tok1", "")
			store.uploadErr = errBoom
			in := input()
			in.Photo = photo("new.png", "new")

			_, err := service.UpdateUser(ctx, "tok1", in)

			Expect(err).To(MatchError(domainerrors.ErrUploadFailed))
			Expect(repo.updates).To(BeZero())
		})

		It("falha no UPDATE remove o objeto recém-enviado e mantém o antigo", func() {
			seedUser("tok1", "fotoProfile/1_old.png")
			repo.updateErr = errBoom
			in := input()
			in.Photo = photo("new.png", "new")

			_, err := service.UpdateUser(ctx, "tok1", in)

			Expect(err).To(MatchError(errBoom))
			Expect(store.keys()).To(Equal([]string{"fotoProfile/1_old.png"}))
		})

		It("erro ao apagar foto antiga não afeta a resposta", func() {
			seedUser("tok1", "fotoProfile/1_old.png")
			store.deleteErr = errBoom
			in := input()
			in.Photo = photo("new.png", "new")

			url, err := service.UpdateUser(ctx, "tok1", in)

			Expect(err).NotTo(HaveOccurred())
			Expect(url).NotTo(BeNil())
		})
	})

	Describe("DeleteUser", func() {
		It("apaga a foto pela chave derivada da URL e depois a linha", func() {
			existing := seedUser("tok1", "fotoProfile/170000_pic.png")

			Expect(service.DeleteUser(ctx, existing.ID)).To(Succeed())

			Expect(store.deleted).To(ConsistOf("fotoProfile/170000_pic.png"))
			Expect(repo.users).NotTo(HaveKey(existing.ID))
			Expect(uow.calls).To(Equal(1))
		})

		It("id inexistente retorna 404 sem chamar o storage", func() {
			err := service.DeleteUser(ctx, 42)

			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
			Expect(store.deleted).To(BeEmpty())
		})

		It("usuário sem foto não chama o storage", func() {
			existing := seedUser("tok1", "")

			Expect(service.DeleteUser(ctx, existing.ID)).To(Succeed())
			Expect(store.deleted).To(BeEmpty())
		})

		It("falha ao apagar a foto ainda remove a linha", func() {
			existing := seedUser("tok1", "fotoProfile/1_a.png")
			store.deleteErr = errBoom

			Expect(service.DeleteUser(ctx, existing.ID)).To(Succeed())
			Expect(repo.users).To(BeEmpty())
		})
	})

	Describe("ListUsers", func() {
		It("retorna lista vazia sem usuários", func() {
			users, err := service.ListUsers(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(BeEmpty())
		})
	})
})
