package errors

// Translate maps a domain failure to a client-facing ClientError.
// Anything it does not recognise is returned as is; callers must treat
// such errors as internal.
func Translate(err error) error {
	code, ok := CodeOf(err)
	if !ok {
		return err
	}
	if ce := translate(code); ce != nil {
		return ce
	}
	return err
}

func translate(code Code) *ClientError {
	switch code {
	case NewThreadLackRequiredProperty:
		return &ClientError{Validation, "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada"}
	case NewThreadDataTypeNotMeetSpec:
		return &ClientError{Validation, "tidak dapat membuat thread baru karena tipe data tidak sesuai"}
	case NewThreadTitleLimitChar:
		return &ClientError{Validation, "tidak dapat membuat thread baru karena karakter judul melebihi batas maksimal"}
	case NewCommentNotContainNeededProperty:
		return &ClientError{Validation, "tidak dapat membuat komentar pada thread dikarenakan properti yang dibutuhkan tidak ada"}
	case NewCommentNotMeetDataTypeSpec:
		return &ClientError{Validation, "content harus string"}
	case AddedCommentNotMeetDataTypeSpec:
		return &ClientError{Validation, "content harus string"}
	case AddedCommentNotContainNeededProperty:
		return &ClientError{Validation, "properti yang dibutuhkan kosong"}
	case UserNotFound:
		return &ClientError{Validation, "username tidak ditemukan"}
	case ThreadNotFound:
		return &ClientError{NotFound, "thread tidak ditemukan"}
	case CommentNotFound:
		return &ClientError{NotFound, "komen tidak ditemukan"}
	case CommentAccessForbiden:
		return &ClientError{Authorization, "kamu tidak punya akses untuk komentar ini"}
	case DeleteCommentForbiden:
		return &ClientError{Authorization, "kamu tidak punya akses untuk menghapus komentar ini"}
	case AddedThreadLackRequiredProperty, AddedThreadDataTypeNotMeetSpec:
		// adapter output guards, surfaced as internal errors
		return nil
	}
	return nil
}
