package seeders

type userSeed struct {
	FullName string
	Email    string
	CPF      string
	Phone    string
	Password string
}

type equipmentSeed struct {
	OwnerEmail  string
	Type        string
	Brand       string
	Model       string
	Year        int
	Condition   string
	Price       string
	City        string
	State       string
	Description string
	PhotoURLs   []string
}

var usersData = []userSeed{
	{
		FullName: "João Pereira",
		Email:    "joao.pereira@example.com",
		CPF:      "52998224725",
		Phone:    "+55 62 99888-1234",
		Password: "senha-demo-1",
	},
	{
		FullName: "Maria Fernandes",
		Email:    "maria.fernandes@example.com",
		CPF:      "15350946056",
		Phone:    "+55 65 99777-4321",
		Password: "senha-demo-2",
	},
	{
		FullName: "Carlos Andrade",
		Email:    "carlos.andrade@example.com",
		CPF:      "11144477735",
		Phone:    "",
		Password: "senha-demo-3",
	},
}

var equipmentsData = []equipmentSeed{
	{
		OwnerEmail: "joao.pereira@example.com",
		Type:       "trator",
		Brand:      "John Deere",
		Model:      "6110J",
		Year:       2019,
		Condition:  "usado",
		Price:      "1200.00",
		City:       "Rio Verde",
		State:      "GO",
		Description: "Trator com cabine climatizada, revisado, pronto para o plantio.",
		PhotoURLs: []string{
			"https://picsum.photos/seed/trator-6110j-1/800/600",
			"https://picsum.photos/seed/trator-6110j-2/800/600",
		},
	},
	{
		OwnerEmail: "joao.pereira@example.com",
		Type:       "colheitadeira",
		Brand:      "Case IH",
		Model:      "Axial-Flow 7250",
		Year:       2021,
		Condition:  "seminovo",
		Price:      "4500.00",
		City:       "Rio Verde",
		State:      "GO",
		Description: "Colheitadeira com plataforma de 35 pés, disponível na safra.",
		PhotoURLs: []string{
			"https://picsum.photos/seed/axial-7250-1/800/600",
		},
	},
	{
		OwnerEmail: "maria.fernandes@example.com",
		Type:       "pulverizador",
		Brand:      "Jacto",
		Model:      "Uniport 3030",
		Year:       2020,
		Condition:  "usado",
		Price:      "2100.00",
		City:       "Sorriso",
		State:      "MT",
		Description: "Barra de 30 metros, GPS e piloto automático.",
		PhotoURLs: []string{
			"https://picsum.photos/seed/uniport-3030-1/800/600",
			"https://picsum.photos/seed/uniport-3030-2/800/600",
			"https://picsum.photos/seed/uniport-3030-3/800/600",
		},
	},
	{
		OwnerEmail: "maria.fernandes@example.com",
		Type:       "plantadeira",
		Brand:      "Stara",
		Model:      "Estrela 32",
		Year:       2018,
		Condition:  "usado",
		Price:      "1800.00",
		City:       "sorriso",
		State:      "MT",
		Description: "Plantadeira de 32 linhas, distribuição pneumática.",
		PhotoURLs: []string{
			"https://picsum.photos/seed/estrela-32-1/800/600",
		},
	},
	{
		OwnerEmail: "carlos.andrade@example.com",
		Type:       "trator",
		Brand:      "Massey Ferguson",
		Model:      "MF 4707",
		Year:       2022,
		Condition:  "novo",
		Price:      "950.00",
		City:       "Luís Eduardo Magalhães",
		State:      "BA",
		Description: "Trator compacto ideal para serviços gerais da fazenda.",
		PhotoURLs: []string{
			"https://picsum.photos/seed/mf-4707-1/800/600",
			"https://picsum.photos/seed/mf-4707-2/800/600",
		},
	},
}
