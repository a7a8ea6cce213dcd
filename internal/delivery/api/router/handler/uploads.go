package handler

import (
	"mime/multipart"
	"net/http"
	"sort"
	"strings"

	"servicedesk/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	photosField = "photos"
	dataField   = "data"
)

// uploadSet holds opened multipart files until the use case has consumed them.
type uploadSet struct {
	files  []*service.FileUpload
	opened []multipart.File
}

func (u *uploadSet) Close() {
	for _, f := range u.opened {
		_ = f.Close()
	}
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// multipartForm returns the parsed form, or nil for non-multipart requests.
func multipartForm(c echo.Context) (*multipart.Form, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart form")
	}

	return form, nil
}

// openFiles opens the files posted under the given fields, accepting both
// "name" and "name[]". With no fields, every file field is opened in name order.
func openFiles(form *multipart.Form, fields ...string) (*uploadSet, error) {
	set := &uploadSet{}
	if form == nil {
		return set, nil
	}

	withAliases := len(fields) > 0
	if !withAliases {
		for name := range form.File {
			fields = append(fields, name)
		}
		sort.Strings(fields)
	}

	for _, field := range fields {
		headers := append([]*multipart.FileHeader(nil), form.File[field]...)
		if withAliases && !strings.HasSuffix(field, "[]") {
			headers = append(headers, form.File[field+"[]"]...)
		}

		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				set.Close()

				return nil, errors.Wrapf(err, "failed to open upload %q", header.Filename)
			}
			set.opened = append(set.opened, file)
			set.files = append(set.files, &service.FileUpload{
				FieldName:   strings.TrimSuffix(field, "[]"),
				FileName:    header.Filename,
				ContentType: header.Header.Get(echo.HeaderContentType),
				Size:        header.Size,
				Content:     file,
			})
		}
	}

	return set, nil
}

// formValue returns the first value posted under key or key[], and whether it was present.
func formValue(form *multipart.Form, key string) (string, bool) {
	for _, k := range []string{key, key + "[]"} {
		if values, ok := form.Value[k]; ok && len(values) > 0 {
			return values[0], true
		}
	}

	return "", false
}

// formValues returns every value posted under key or key[].
func formValues(form *multipart.Form, key string) []string {
	values := append([]string(nil), form.Value[key]...)

	return append(values, form.Value[key+"[]"]...)
}

func optionalFormValue(form *multipart.Form, key string) *string {
	if v, ok := formValue(form, key); ok {
		return &v
	}

	return nil
}
