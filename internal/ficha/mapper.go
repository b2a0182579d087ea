package ficha

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KromaEnergia/api-fichas/internal/cliente"
	"github.com/KromaEnergia/api-fichas/internal/contrato"
	"github.com/KromaEnergia/api-fichas/internal/pagamento"
)

/* ============================== Escrita ============================== */

func clienteParaRegistro(d DadosCliente) cliente.Cliente {
	return cliente.Cliente{
		Nome:           d.Nome,
		CPF:            d.CPF,
		RG:             d.RG,
		OrgaoEmissor:   d.OrgaoEmissor,
		EstadoEmissor:  d.EstadoEmissor,
		Profissao:      d.Profissao,
		DataNascimento: d.DataNascimento,
		EstadoCivil:    d.EstadoCivil,
		Email:          d.Email,
		Telefone:       d.Telefone,
		Logradouro:     d.Logradouro,
		Numero:         d.Numero,
		Bairro:         d.Bairro,
		Complemento:    d.Complemento,
		CEP:            d.CEP,
		Cidade:         d.Cidade,
		Estado:         d.Estado,

		NomeConjuge:           d.NomeConjuge,
		CPFConjuge:            d.CPFConjuge,
		RGConjuge:             d.RGConjuge,
		OrgaoEmissorConjuge:   d.OrgaoEmissorConjuge,
		EstadoEmissorConjuge:  d.EstadoEmissorConjuge,
		ProfissaoConjuge:      d.ProfissaoConjuge,
		DataNascimentoConjuge: d.DataNascimentoConjuge,
		EstadoCivilConjuge:    d.EstadoCivilConjuge,
		EmailConjuge:          d.EmailConjuge,
		TelefoneConjuge:       d.TelefoneConjuge,
	}
}

func fichaParaRegistro(clienteID uuid.UUID, n DadosNegociacao, nomeConsultor string) FichaNegociacao {
	return FichaNegociacao{
		ClienteID:     clienteID,
		Liner:         n.Liner,
		Closer:        n.Closer,
		LiderSala:     n.LiderSala,
		NomeSala:      n.NomeSala,
		TipoVenda:     n.TipoVenda,
		NomeConsultor: nomeConsultor,
		Status:        StatusPendente,
	}
}

func contratosParaRegistro(fichaID uuid.UUID, cs []Contrato) []contrato.Contrato {
	out := make([]contrato.Contrato, 0, len(cs))
	for i, c := range cs {
		tipo := c.TipoContrato
		if tipo == "" {
			tipo = contrato.TipoDigital
		}
		out = append(out, contrato.Contrato{
			FichaID:        fichaID,
			Empreendimento: c.Empreendimento,
			CategoriaPreco: c.CategoriaPreco,
			Torre:          c.Torre,
			Apartamento:    c.Apartamento,
			Cota:           c.Cota,
			Valor:          decimalOuZero(c.Valor),
			TipoContrato:   tipo,
			Ordem:          i,
		})
	}
	return out
}

// pagamentosParaRegistro descarta entradas sem total positivo.
func pagamentosParaRegistro(fichaID uuid.UUID, ps []InformacaoPagamento) []pagamento.Pagamento {
	out := make([]pagamento.Pagamento, 0, len(ps))
	for _, p := range ps {
		if !positivo(p.Total) {
			continue
		}
		qtd := inteiroOuZero(p.QtdParcelas)
		out = append(out, pagamento.Pagamento{
			FichaID:            fichaID,
			Tipo:               p.Tipo,
			Total:              decimal.NewNullDecimal(decimalOuZero(p.Total)),
			QtdParcelas:        &qtd,
			ValorParcela:       decimal.NewNullDecimal(decimalOuZero(p.ValorParcela)),
			FormaPagamento:     opcional(p.FormaPagamento),
			PrimeiroVencimento: opcional(p.PrimeiroVencimento),
			Ordem:              len(out),
		})
	}
	return out
}

// parcelasSalaParaRegistro descarta entradas sem valor total positivo.
func parcelasSalaParaRegistro(fichaID uuid.UUID, ps []ParcelaPagaSala) []pagamento.FormaPagamentoSala {
	out := make([]pagamento.FormaPagamentoSala, 0, len(ps))
	for _, p := range ps {
		if !positivo(p.ValorTotal) {
			continue
		}
		cotas := inteiroOuZero(p.QuantidadeCotas)
		out = append(out, pagamento.FormaPagamentoSala{
			FichaID:          fichaID,
			FormaPagamento:   opcional(p.Tipo),
			ValorTotal:       decimal.NewNullDecimal(decimalOuZero(p.ValorTotal)),
			ValorDistribuido: decimal.NewNullDecimal(decimalOuZero(p.ValorDistribuido)),
			QuantidadeCotas:  &cotas,
			Ordem:            len(out),
		})
	}
	return out
}

/* ============================== Leitura ============================== */

func registroParaFicha(f FichaNegociacao) FichaCompleta {
	out := FichaCompleta{
		ID:                 f.ID,
		DadosCliente:       registroParaCliente(f.Cliente),
		DadosNegociacao:    registroParaNegociacao(f),
		NomeConsultor:      f.NomeConsultor,
		Timestamp:          f.CreatedAt.UnixMilli(),
		Status:             f.Status,
		AdminResponsavel:   textoOpcional(f.AdminResponsavel),
		TimestampInicio:    millis(f.TimestampInicio),
		TimestampConclusao: millis(f.TimestampConclusao),
	}
	return out
}

func registroParaCliente(c cliente.Cliente) DadosCliente {
	return DadosCliente{
		Nome:           c.Nome,
		CPF:            c.CPF,
		RG:             c.RG,
		OrgaoEmissor:   c.OrgaoEmissor,
		EstadoEmissor:  c.EstadoEmissor,
		Profissao:      c.Profissao,
		DataNascimento: c.DataNascimento,
		EstadoCivil:    c.EstadoCivil,
		Email:          c.Email,
		Telefone:       c.Telefone,
		Logradouro:     c.Logradouro,
		Numero:         c.Numero,
		Bairro:         c.Bairro,
		Complemento:    c.Complemento,
		CEP:            c.CEP,
		Cidade:         c.Cidade,
		Estado:         c.Estado,

		NomeConjuge:           c.NomeConjuge,
		CPFConjuge:            c.CPFConjuge,
		RGConjuge:             c.RGConjuge,
		OrgaoEmissorConjuge:   c.OrgaoEmissorConjuge,
		EstadoEmissorConjuge:  c.EstadoEmissorConjuge,
		ProfissaoConjuge:      c.ProfissaoConjuge,
		DataNascimentoConjuge: c.DataNascimentoConjuge,
		EstadoCivilConjuge:    c.EstadoCivilConjuge,
		EmailConjuge:          c.EmailConjuge,
		TelefoneConjuge:       c.TelefoneConjuge,
	}
}

func registroParaNegociacao(f FichaNegociacao) DadosNegociacao {
	n := DadosNegociacao{
		Liner:                f.Liner,
		Closer:               f.Closer,
		LiderSala:            f.LiderSala,
		NomeSala:             f.NomeSala,
		TipoVenda:            f.TipoVenda,
		Contratos:            make([]Contrato, 0, len(f.Contratos)),
		InformacoesPagamento: make([]InformacaoPagamento, 0, len(f.Pagamentos)),
		ParcelasPagasSala:    make([]ParcelaPagaSala, 0, len(f.FormasPagamentoSala)),
	}

	for _, c := range f.Contratos {
		n.Contratos = append(n.Contratos, Contrato{
			Empreendimento: c.Empreendimento,
			CategoriaPreco: c.CategoriaPreco,
			Torre:          c.Torre,
			Apartamento:    c.Apartamento,
			Cota:           c.Cota,
			Valor:          c.Valor.String(),
			TipoContrato:   c.TipoContrato,
		})
	}

	for _, p := range f.Pagamentos {
		n.InformacoesPagamento = append(n.InformacoesPagamento, InformacaoPagamento{
			Tipo:               p.Tipo,
			Total:              textoDecimal(p.Total),
			QtdParcelas:        textoInteiro(p.QtdParcelas),
			ValorParcela:       textoDecimal(p.ValorParcela),
			FormaPagamento:     textoOpcional(p.FormaPagamento),
			PrimeiroVencimento: textoOpcional(p.PrimeiroVencimento),
		})
	}

	for _, p := range f.FormasPagamentoSala {
		forma := textoOpcional(p.FormaPagamento)
		n.ParcelasPagasSala = append(n.ParcelasPagasSala, ParcelaPagaSala{
			Tipo:             forma,
			ValorTotal:       textoDecimal(p.ValorTotal),
			ValorDistribuido: textoDecimal(p.ValorDistribuido),
			QuantidadeCotas:  textoInteiro(p.QuantidadeCotas),
			FormasPagamento:  []string{forma},
		})
	}

	return n
}

func millis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
