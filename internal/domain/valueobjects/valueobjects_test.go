package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGender(t *testing.T) {
	tests := []struct {
		input   string
		want    Gender
		wantErr bool
	}{
		{"Laki-laki", GenderMale, false},
		{"Perempuan", GenderFemale, false},
		{" Perempuan ", GenderFemale, false},
		{"laki-laki", Gender{}, true},
		{"", Gender{}, true},
		{"Other", Gender{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewGender(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGender)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfilePhotoKey(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	t.Run("monta chave com epoch em milissegundos", func(t *testing.T) {
		assert.Equal(t, "fotoProfile/1700000000123_pic.png", ProfilePhotoKey(now, "pic.png"))
	})

	t.Run("remove diretórios do nome enviado", func(t *testing.T) {
		assert.Equal(t, "fotoProfile/1700000000123_pic.png", ProfilePhotoKey(now, "../../etc/pic.png"))
		assert.Equal(t, "fotoProfile/1700000000123_pic.png", ProfilePhotoKey(now, `C:\Users\me\pic.png`))
		assert.Equal(t, "fotoProfile/1700000000123_b.png", ProfilePhotoKey(now, "a/b.png"))
	})

	t.Run("chave gerada é recuperável a partir da URL pública", func(t *testing.T) {
		key := ProfilePhotoKey(now, "a/b.png")
		got, ok := ProfilePhotoKeyFromURL("https://storage.googleapis.com/cofflyze-images/" + key)
		assert.True(t, ok)
		assert.Equal(t, key, got)
	})

	t.Run("nome vazio vira upload", func(t *testing.T) {
		assert.Equal(t, "fotoProfile/1700000000123_upload", ProfilePhotoKey(now, ""))
	})
}

func TestProfilePhotoKeyFromURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"url pública", "https://storage.googleapis.com/cofflyze-images/fotoProfile/170000_pic.png", "fotoProfile/170000_pic.png", true},
		{"url com query", "https://cdn.example.com/b/fotoProfile/1_a.jpg?v=2", "fotoProfile/1_a.jpg", true},
		{"apenas o nome", "170000_pic.png", "fotoProfile/170000_pic.png", true},
		{"vazia", "", "", false},
		{"barra final", "https://x/", "fotoProfile/x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ProfilePhotoKeyFromURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCivilTimestamp(t *testing.T) {
	loc, err := LoadTimeZone("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeZone, loc.String())

	now := time.Date(2024, time.March, 1, 20, 30, 15, 0, time.UTC)
	assert.Equal(t, "2024-03-02 03:30:15", CivilTimestamp(now, loc))

	_, err = LoadTimeZone("Mars/Olympus")
	assert.Error(t, err)
}
