package model

// Nama role bawaan sistem. Nilai harus sama persis dengan RoleDefinition.Name.
const (
	RoleAdmin       = "Admin"
	RolePimpinan    = "Pimpinan"
	RoleSekretaris  = "Sekretaris"
	RoleOperator    = "Operator"
	RoleBendahara   = "Bendahara"
	RoleKepalaSeksi = "Kepala Seksi"
	RoleAnggota     = "Anggota"
)

const (
	StatusAktif      = "Aktif"
	StatusTidakAktif = "Tidak Aktif"
)

// Member adalah data anggota. Field role/seksi/jabatan menyimpan NAMA definisi
// (bukan id), mengikuti format data lama; rename definisi akan menulis ulang
// semua member yang memakai nama lama.
type Member struct {
	ID               string `json:"id"`
	NamaLengkap      string `json:"namaLengkap"`
	NomorID          string `json:"nomorId"`
	TanggalLahir     string `json:"tanggalLahir"`
	JenisKelamin     string `json:"jenisKelamin"` // Laki-laki / Perempuan
	Alamat           string `json:"alamat"`
	Telepon          string `json:"telepon"`
	Email            string `json:"email"`
	Jabatan          string `json:"jabatan"`
	TanggalBergabung string `json:"tanggalBergabung"`
	Status           string `json:"status"` // Aktif / Tidak Aktif
	Bio              string `json:"bio"`
	FotoUrl          string `json:"fotoUrl"`
	Role             string `json:"role"`
	Seksi            string `json:"seksi"`
}
