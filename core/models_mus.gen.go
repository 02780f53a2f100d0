// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
)

var (
	ptr3zZ4NtX7PUC5lfL04lTg6wΞΞ   = ord.NewPtrSer[time.Time](raw.TimeUnix)
	sliceINGgbvNp3fNubyVZINJGHAΞΞ = ord.NewSliceSer[string](ord.String)
	sliceVWHdipo4O5ΔiqK3Qm8h3tAΞΞ = ord.NewSliceSer[Message](MessageMUS)
	sliceVfΔYuAwBKPIfGluO77oCKgΞΞ = ord.NewSliceSer[ID](IDMUS)
	slicefGdaKLCjGrFVi9Q7OnCd0gΞΞ = ord.NewSliceSer[Image](ImageMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return ord.String.Size(string(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var ImageMUS = imageMUS{}

type imageMUS struct{}

func (s imageMUS) Marshal(v Image, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	return n + ord.String.Marshal(v.Path, bs[n:])
}

func (s imageMUS) Unmarshal(bs []byte) (v Image, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Path, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s imageMUS) Size(v Image) (size int) {
	size = ord.String.Size(v.Name)
	return size + ord.String.Size(v.Path)
}

func (s imageMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var MessageMUS = messageMUS{}

type messageMUS struct{}

func (s messageMUS) Marshal(v Message, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.ChatId, bs[n:])
	n += IDMUS.Marshal(v.AuthorId, bs[n:])
	n += ord.String.Marshal(v.AuthorName, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.SentAt, bs[n:])
	return n + ptr3zZ4NtX7PUC5lfL04lTg6wΞΞ.Marshal(v.ReadAt, bs[n:])
}

func (s messageMUS) Unmarshal(bs []byte) (v Message, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ChatId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AuthorId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AuthorName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SentAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ReadAt, n1, err = ptr3zZ4NtX7PUC5lfL04lTg6wΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s messageMUS) Size(v Message) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.ChatId)
	size += IDMUS.Size(v.AuthorId)
	size += ord.String.Size(v.AuthorName)
	size += ord.String.Size(v.Text)
	size += raw.TimeUnixMicro.Size(v.SentAt)
	return size + ptr3zZ4NtX7PUC5lfL04lTg6wΞΞ.Size(v.ReadAt)
}

func (s messageMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptr3zZ4NtX7PUC5lfL04lTg6wΞΞ.Skip(bs[n:])
	n += n1
	return
}

var ChatMUS = chatMUS{}

type chatMUS struct{}

func (s chatMUS) Marshal(v Chat, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += sliceVfΔYuAwBKPIfGluO77oCKgΞΞ.Marshal(v.Users, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
	return n + sliceVWHdipo4O5ΔiqK3Qm8h3tAΞΞ.Marshal(v.Messages, bs[n:])
}

func (s chatMUS) Unmarshal(bs []byte) (v Chat, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Users, n1, err = sliceVfΔYuAwBKPIfGluO77oCKgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Messages, n1, err = sliceVWHdipo4O5ΔiqK3Qm8h3tAΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s chatMUS) Size(v Chat) (size int) {
	size = IDMUS.Size(v.Id)
	size += sliceVfΔYuAwBKPIfGluO77oCKgΞΞ.Size(v.Users)
	size += raw.TimeUnixMicro.Size(v.CreatedAt)
	return size + sliceVWHdipo4O5ΔiqK3Qm8h3tAΞΞ.Size(v.Messages)
}

func (s chatMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = sliceVfΔYuAwBKPIfGluO77oCKgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceVWHdipo4O5ΔiqK3Qm8h3tAΞΞ.Skip(bs[n:])
	n += n1
	return
}

var ListingMUS = listingMUS{}

type listingMUS struct{}

func (s listingMUS) Marshal(v Listing, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.ShortText, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += slicefGdaKLCjGrFVi9Q7OnCd0gΞΞ.Marshal(v.Images, bs[n:])
	n += IDMUS.Marshal(v.OwnerId, bs[n:])
	n += sliceINGgbvNp3fNubyVZINJGHAΞΞ.Marshal(v.Tags, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
	n += ptr3zZ4NtX7PUC5lfL04lTg6wΞΞ.Marshal(v.UpdatedAt, bs[n:])
	return n + ord.Bool.Marshal(v.IsDeleted, bs[n:])
}

func (s listingMUS) Unmarshal(bs []byte) (v Listing, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ShortText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Images, n1, err = slicefGdaKLCjGrFVi9Q7OnCd0gΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OwnerId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tags, n1, err = sliceINGgbvNp3fNubyVZINJGHAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = ptr3zZ4NtX7PUC5lfL04lTg6wΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IsDeleted, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	return
}

func (s listingMUS) Size(v Listing) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.ShortText)
	size += ord.String.Size(v.Description)
	size += slicefGdaKLCjGrFVi9Q7OnCd0gΞΞ.Size(v.Images)
	size += IDMUS.Size(v.OwnerId)
	size += sliceINGgbvNp3fNubyVZINJGHAΞΞ.Size(v.Tags)
	size += raw.TimeUnixMicro.Size(v.CreatedAt)
	size += ptr3zZ4NtX7PUC5lfL04lTg6wΞΞ.Size(v.UpdatedAt)
	return size + ord.Bool.Size(v.IsDeleted)
}

func (s listingMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicefGdaKLCjGrFVi9Q7OnCd0gΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceINGgbvNp3fNubyVZINJGHAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptr3zZ4NtX7PUC5lfL04lTg6wΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	return
}

var UserMUS = userMUS{}

type userMUS struct{}

func (s userMUS) Marshal(v User, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Login, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Email, bs[n:])
	n += ord.String.Marshal(v.PasswordHash, bs[n:])
	n += ord.String.Marshal(v.Salt, bs[n:])
	return n + ord.String.Marshal(v.ContactPhone, bs[n:])
}

func (s userMUS) Unmarshal(bs []byte) (v User, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Login, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Email, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PasswordHash, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Salt, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ContactPhone, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s userMUS) Size(v User) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Login)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Email)
	size += ord.String.Size(v.PasswordHash)
	size += ord.String.Size(v.Salt)
	return size + ord.String.Size(v.ContactPhone)
}

func (s userMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}
