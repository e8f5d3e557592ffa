package usecase_test

import (
	"testing"

	"github.com/olenagerasimova/management-api/internal/domain"
	"github.com/olenagerasimova/management-api/internal/usecase"
)

func TestAPIPermission_Allowed(t *testing.T) {
	type args struct {
		path     string
		username string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "正常系: ルートパスはどのユーザーにも許可されない",
			args: args{
				path:     "/",
				username: "alice",
			},
			want: false,
		},
		{
			name: "正常系: 末尾セグメントが自分の名前なら許可される",
			args: args{
				path:     "/dashboard/alice",
				username: "alice",
			},
			want: true,
		},
		{
			name: "正常系: 親パスに関係なく末尾セグメントで判定される",
			args: args{
				path:     "/api/lalala/alice",
				username: "alice",
			},
			want: true,
		},
		{
			name: "正常系: 他人のリソースは許可されない",
			args: args{
				path:     "/dashboard/bob",
				username: "alice",
			},
			want: false,
		},
		{
			name: "正常系: 親パスが異なっても他人のリソースは許可されない",
			args: args{
				path:     "/api/lalala/bob",
				username: "alice",
			},
			want: false,
		},
		{
			name: "正常系: 末尾スラッシュは許可されない",
			args: args{
				path:     "/dashboard/alice/",
				username: "alice",
			},
			want: false,
		},
		{
			name: "正常系: 大文字小文字は区別される",
			args: args{
				path:     "/dashboard/Alice",
				username: "alice",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := domain.NewUser(tt.args.username)
			if err != nil {
				t.Fatalf("NewUser() failed: %v", err)
			}

			if got := usecase.NewAPIPermission(tt.args.path).Allowed(user); got != tt.want {
				t.Errorf("Allowed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAPIPermission_Allowed_NilUser(t *testing.T) {
	if usecase.NewAPIPermission("/dashboard/alice").Allowed(nil) {
		t.Error("Allowed() = true for nil user, want false")
	}
}
