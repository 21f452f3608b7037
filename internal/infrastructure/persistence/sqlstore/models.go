package sqlstore

// Os nomes de colunas seguem o schema já existente em produção

// UserModel é o model GORM para usuários
type UserModel struct {
	ID          int64   `gorm:"column:idUser;primaryKey;autoIncrement"`
	FullName    string  `gorm:"column:namaLengkap;type:varchar(255);not null"`
	Gender      string  `gorm:"column:jenisKelamin;type:varchar(20);not null"`
	PhotoURL    *string `gorm:"column:fotoProfile;type:varchar(500)"`
	PhoneNumber *string `gorm:"column:nomorHp;type:varchar(20)"`
	Address     *string `gorm:"column:alamat;type:text"`
	Token       *string `gorm:"column:tokenFirebase;type:varchar(255);index"`
}

func (UserModel) TableName() string {
	return "tbl_user"
}

// HistoryModel é o model GORM para históricos de diagnóstico
type HistoryModel struct {
	ID          int64   `gorm:"column:id_history;primaryKey;autoIncrement"`
	Image       *string `gorm:"column:gambar;type:text"`
	Accuracy    string  `gorm:"column:akurasi;type:varchar(50);not null"`
	RecordedAt  string  `gorm:"column:tanggal;type:varchar(19);not null"`
	DiseaseName string  `gorm:"column:nama_penyakit;type:varchar(100);not null"`
	Description string  `gorm:"column:deskripsi;type:text;not null"`
	Cause       *string `gorm:"column:penyebab;type:text"`
	Symptoms    *string `gorm:"column:gejala;type:text"`
	RiskFactors *string `gorm:"column:faktor_risiko;type:text"`
	Treatment   *string `gorm:"column:penanganan;type:text"`
	Prevention  *string `gorm:"column:pencegahan;type:text"`
	Token       string  `gorm:"column:tokenFirebase;type:varchar(255);not null;index"`
}

func (HistoryModel) TableName() string {
	return "tbl_history"
}

// ArticleModel é o model GORM para artigos
type ArticleModel struct {
	ID    int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Title string  `gorm:"column:judul;type:varchar(255);not null"`
	Body  string  `gorm:"column:article;type:text;not null"`
	Photo *string `gorm:"column:foto;type:text"`
}

func (ArticleModel) TableName() string {
	return "tbl_articles"
}
