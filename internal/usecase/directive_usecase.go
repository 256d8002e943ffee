package usecase

import (
	"errors"
	"strings"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
)

// DirectiveUsecase mengelola perintah darurat dan laporan tugas per anggota.
// Status perintah (Baru/Dikerjakan/Selesai) diatur manual oleh pembuat dan
// tidak pernah diturunkan dari laporan.
type DirectiveUsecase struct {
	directives  repository.DirectiveRepository
	taskReports repository.TaskReportRepository
	members     repository.MemberRepository
}

func NewDirectiveUsecase(directives repository.DirectiveRepository, taskReports repository.TaskReportRepository, members repository.MemberRepository) *DirectiveUsecase {
	return &DirectiveUsecase{directives: directives, taskReports: taskReports, members: members}
}

// Save meng-upsert: perintah baru distempel pembuat + tanggal, edit menimpa
// seluruh field (termasuk status, karena status dikelola pembuat).
func (u *DirectiveUsecase) Save(d model.EmergencyDirective, actorID string) (*model.EmergencyDirective, error) {
	if strings.TrimSpace(d.Title) == "" {
		return nil, ErrDataKosong
	}
	if d.ID == "" {
		d.ID = newID("dir-")
		d.CreatedBy = actorID
		d.Date = nowISO()
		if d.Status == "" {
			d.Status = model.DirectiveBaru
		}
	} else {
		existing, err := u.directives.FindByID(d.ID)
		if err != nil {
			return nil, err
		}
		// Stempel pembuat dan tanggal tidak dikirim ulang oleh client saat edit
		d.CreatedBy = existing.CreatedBy
		d.Date = existing.Date
		if d.Status == "" {
			d.Status = existing.Status
		}
	}
	if err := u.directives.Save(d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (u *DirectiveUsecase) Delete(id string) error {
	return u.directives.Delete(id)
}

// Acknowledge membuat TaskReport berstatus Dilihat secara lazy. Idempoten:
// jika record untuk pasangan (anggota, perintah) sudah ada, tidak terjadi apa-apa.
func (u *DirectiveUsecase) Acknowledge(memberID, directiveID string) (*model.TaskReport, error) {
	d, err := u.directives.FindByID(directiveID)
	if err != nil {
		return nil, err
	}
	if !d.AssignedTo.Includes(memberID) {
		return nil, ErrBukanPenerimaTugas
	}
	id := model.TaskReportID(memberID, directiveID)
	if existing, err := u.taskReports.FindByID(id); err == nil {
		return existing, nil
	}
	t := model.TaskReport{
		ID:          id,
		MemberID:    memberID,
		DirectiveID: directiveID,
		Status:      model.TaskDilihat,
	}
	if err := u.taskReports.Create(t); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return u.taskReports.FindByID(id)
		}
		return nil, err
	}
	return &t, nil
}

// Report mengisi laporan pada record yang sudah ada. Pengiriman ulang menimpa
// teks/gambar/timestamp, tidak pernah membuat record kedua.
func (u *DirectiveUsecase) Report(memberID, directiveID, reportText, reportImageUrl string) (*model.TaskReport, error) {
	id := model.TaskReportID(memberID, directiveID)
	t, err := u.taskReports.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBelumDilihat
		}
		return nil, err
	}
	t.Status = model.TaskDilaporkan
	t.ReportText = reportText
	t.ReportImageUrl = reportImageUrl
	t.ReportedAt = nowISO()
	if err := u.taskReports.Update(*t); err != nil {
		return nil, err
	}
	return t, nil
}

// Progress menghitung agregasi untuk dasbor. Himpunan penerima dihitung ulang
// saat query: 'all' berarti seluruh anggota saat ini, bukan snapshot.
func (u *DirectiveUsecase) Progress(directiveID string) (*model.DirectiveProgress, error) {
	d, err := u.directives.FindByID(directiveID)
	if err != nil {
		return nil, err
	}
	assigned := len(d.AssignedTo.MemberIDs)
	if d.AssignedTo.All {
		assigned = len(u.members.GetAll())
	}
	p := model.DirectiveProgress{DirectiveID: directiveID, AssignedCount: assigned}
	for _, r := range u.taskReports.GetByDirectiveID(directiveID) {
		switch r.Status {
		case model.TaskDilihat:
			p.ViewedCount++
		case model.TaskDilaporkan:
			p.ViewedCount++
			p.ReportedCount++
		}
	}
	return &p, nil
}
