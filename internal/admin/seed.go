package admin

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/KromaEnergia/api-fichas/internal/logger"
)

// Garantir cria o admin inicial se o email ainda não existir. Sem senha
// configurada, gera uma temporária e registra no log.
func Garantir(db *gorm.DB, repo Repository, nome, email, senha string, log *logger.Logger) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}

	_, err := repo.BuscarPorEmail(db, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if senha == "" {
		senha, err = GerarSenhaTemporaria()
		if err != nil {
			return err
		}
		log.Warnw("admin inicial criado com senha temporária", "email", email, "senha", senha)
	}
	hash, err := HashSenha(senha)
	if err != nil {
		return err
	}

	if nome == "" {
		nome = email
	}
	if err := repo.Salvar(db, &Admin{Nome: nome, Email: email, Senha: hash}); err != nil {
		return err
	}
	log.Infow("admin inicial criado", "email", email)
	return nil
}
