package particle

import "fmt"

// Code generated from the PDG particle code catalog; do not hand-edit the
// const block below. See DESIGN.md for provenance.

// ParticleType identifies a particle species by its PDG Monte Carlo
// numbering scheme code. Composite nucleus codes follow the PDG ion
// convention (10LZZZAAAI); everything else is a standard PDG code.
type ParticleType int32

const (
	// PseudoParticle marks a TOPAS empty-history placeholder record; it is
	// not a real particle and carries no PDG meaning of its own.
	PseudoParticle ParticleType = 0

	DownQuark ParticleType = 1
	UpQuark ParticleType = 2
	StrangeQuark ParticleType = 3
	CharmQuark ParticleType = 4
	BottomQuark ParticleType = 5
	TopQuark ParticleType = 6
	AntiDownQuark ParticleType = -1
	AntiUpQuark ParticleType = -2
	AntiStrangeQuark ParticleType = -3
	AntiCharmQuark ParticleType = -4
	AntiBottomQuark ParticleType = -5
	AntiTopQuark ParticleType = -6
	BPrimeQuark ParticleType = 7
	AntiBPrimeQuark ParticleType = -7
	TPrimeQuark ParticleType = 8
	AntiTPrimeQuark ParticleType = -8
	Electron ParticleType = 11
	Positron ParticleType = -11
	ElectronNeutrino ParticleType = 12
	AntiElectronNeutrino ParticleType = -12
	Muon ParticleType = 13
	AntiMuon ParticleType = -13
	MuonNeutrino ParticleType = 14
	AntiMuonNeutrino ParticleType = -14
	Tau ParticleType = 15
	AntiTau ParticleType = -15
	TauNeutrino ParticleType = 16
	AntiTauNeutrino ParticleType = -16
	TauPrime ParticleType = 17
	AntiTauPrime ParticleType = -17
	TauPrimeNeutrino ParticleType = 18
	AntiTauPrimeNeutrino ParticleType = -18
	Gluon ParticleType = 21
	Photon ParticleType = 22
	ZBoson ParticleType = 23
	WBoson ParticleType = 24
	AntiWBoson ParticleType = -24
	HiggsBoson ParticleType = 25
	ZPrimeBoson ParticleType = 32
	ZDoublePrimeBoson ParticleType = 33
	WPrimeBoson ParticleType = 34
	AntiWPrimeBoson ParticleType = -34
	NeutralHiggsBoson ParticleType = 35
	PseudoscalarHiggsBoson ParticleType = 36
	ChargedHiggsBoson ParticleType = 37
	AntiChargedHiggsBoson ParticleType = -37
	Diquark_dd_1 ParticleType = 1103
	AntiDiquark_dd_1 ParticleType = -1103
	Diquark_ud_0 ParticleType = 2101
	AntiDiquark_ud_0 ParticleType = -2101
	Diquark_ud_1 ParticleType = 2103
	AntiDiquark_ud_1 ParticleType = -2103
	Diquark_uu_1 ParticleType = 2203
	AntiDiquark_uu_1 ParticleType = -2203
	Diquark_sd_0 ParticleType = 3101
	AntiDiquark_sd_0 ParticleType = -3101
	Diquark_sd_1 ParticleType = 3103
	AntiDiquark_sd_1 ParticleType = -3103
	Diquark_su_0 ParticleType = 3201
	AntiDiquark_su_0 ParticleType = -3201
	Diquark_su_1 ParticleType = 3203
	AntiDiquark_su_1 ParticleType = -3203
	Diquark_ss_1 ParticleType = 3303
	AntiDiquark_ss_1 ParticleType = -3303
	Diquark_cd_0 ParticleType = 4101
	AntiDiquark_cd_0 ParticleType = -4101
	Diquark_cd_1 ParticleType = 4103
	AntiDiquark_cd_1 ParticleType = -4103
	Diquark_cu_0 ParticleType = 4201
	AntiDiquark_cu_0 ParticleType = -4201
	Diquark_cu_1 ParticleType = 4203
	AntiDiquark_cu_1 ParticleType = -4203
	Diquark_cs_0 ParticleType = 4301
	AntiDiquark_cs_0 ParticleType = -4301
	Diquark_cs_1 ParticleType = 4303
	AntiDiquark_cs_1 ParticleType = -4303
	Diquark_cc_1 ParticleType = 4403
	AntiDiquark_cc_1 ParticleType = -4403
	Diquark_bd_0 ParticleType = 5101
	AntiDiquark_bd_0 ParticleType = -5101
	Diquark_bd_1 ParticleType = 5103
	AntiDiquark_bd_1 ParticleType = -5103
	Diquark_bu_0 ParticleType = 5201
	AntiDiquark_bu_0 ParticleType = -5201
	Diquark_bu_1 ParticleType = 5203
	AntiDiquark_bu_1 ParticleType = -5203
	Diquark_bs_0 ParticleType = 5301
	AntiDiquark_bs_0 ParticleType = -5301
	Diquark_bs_1 ParticleType = 5303
	AntiDiquark_bs_1 ParticleType = -5303
	Diquark_bc_0 ParticleType = 5401
	AntiDiquark_bc_0 ParticleType = -5401
	Diquark_bc_1 ParticleType = 5403
	AntiDiquark_bc_1 ParticleType = -5403
	Diquark_bb_1 ParticleType = 5503
	AntiDiquark_bb_1 ParticleType = -5503
	PionZero ParticleType = 111
	PionPlus ParticleType = 211
	AntiPionPlus ParticleType = -211
	a0_980_Zero ParticleType = 9000111
	a0_980_Plus ParticleType = 9000211
	Anti_a0_980_Plus ParticleType = -9000211
	Pi_1300_Zero ParticleType = 100111
	Pi_1300_Plus ParticleType = 100211
	AntiPi_1300_Plus ParticleType = -100211
	a0_1450_Zero ParticleType = 10111
	a0_1450_Plus ParticleType = 10211
	Anti_a0_1450_Plus ParticleType = -10211
	Pi_1800_Zero ParticleType = 9010111
	Pi_1800_Plus ParticleType = 9010211
	AntiPi_1800_Plus ParticleType = -9010211
	Rho_770_Zero ParticleType = 113
	Rho_770_Plus ParticleType = 213
	AntiRho_770_Plus ParticleType = -213
	b1_1235_Zero ParticleType = 10113
	b1_1235_Plus ParticleType = 10213
	Anti_b1_1235_Plus ParticleType = -10213
	a1_1260_Zero ParticleType = 20113
	a1_1260_Plus ParticleType = 20213
	Anti_a1_1260_Plus ParticleType = -20213
	Pi1_1400_Zero ParticleType = 9000113
	Pi1_1400_Plus ParticleType = 9000213
	Anti_Pi1_1400_Plus ParticleType = -9000213
	Rho_1450_Zero ParticleType = 100113
	Rho_1450_Plus ParticleType = 100213
	AntiRho_1450_Plus ParticleType = -100213
	Pi1_1600_Zero ParticleType = 9010113
	Pi1_1600_Plus ParticleType = 9010213
	AntiPi1_1600_Plus ParticleType = -9010213
	a1_1640_Zero ParticleType = 9020113
	a1_1640_Plus ParticleType = 9020213
	Anti_a1_1640_Plus ParticleType = -9020213
	Rho_1700_Zero ParticleType = 30113
	Rho_1700_Plus ParticleType = 30213
	AntiRho_1700_Plus ParticleType = -30213
	Rho_1900_Zero ParticleType = 9030113
	Rho_1900_Plus ParticleType = 9030213
	AntiRho_1900_Plus ParticleType = -9030213
	Rho_2150_Zero ParticleType = 9040113
	Rho_2150_Plus ParticleType = 9040213
	AntiRho_2150_Plus ParticleType = -9040213
	a2_1320_Zero ParticleType = 115
	a2_1320_Plus ParticleType = 215
	Anti_a2_1320_Plus ParticleType = -215
	Pi2_1670_Zero ParticleType = 10115
	Pi2_1670_Plus ParticleType = 10215
	AntiPi2_1670_Plus ParticleType = -10215
	a2_1700_Zero ParticleType = 9000115
	a2_1700_Plus ParticleType = 9000215
	Anti_a2_1700_Plus ParticleType = -9000215
	Pi2_2100_Zero ParticleType = 9010115
	Pi2_2100_Plus ParticleType = 9010215
	AntiPi2_2100_Plus ParticleType = -9010215
	Rho3_1690_Zero ParticleType = 117
	Rho3_1690_Plus ParticleType = 217
	AntiRho3_1690_Plus ParticleType = -217
	Rho3_1990_Zero ParticleType = 9000117
	Rho3_1990_Plus ParticleType = 9000217
	AntiRho3_1990_Plus ParticleType = -9000217
	Rho3_2250_Zero ParticleType = 9010117
	Rho3_2250_Plus ParticleType = 9010217
	AntiRho3_2250_Plus ParticleType = -9010217
	a4_2040_Zero ParticleType = 119
	a4_2040_Plus ParticleType = 219
	Anti_a4_2040_Plus ParticleType = -219
	Eta ParticleType = 221
	EtaPrime_958 ParticleType = 331
	f0_600 ParticleType = 9000221
	f0_980 ParticleType = 9010221
	Eta_1295 ParticleType = 100221
	f0_1370 ParticleType = 10221
	Eta_1405 ParticleType = 9020221
	Eta_1475 ParticleType = 100331
	f0_1500 ParticleType = 9030221
	f0_1710 ParticleType = 10331
	Eta_1760 ParticleType = 9040221
	f0_2020 ParticleType = 9050221
	f0_2100 ParticleType = 9060221
	f0_2200 ParticleType = 9070221
	Eta_2225 ParticleType = 9080221
	Omega_782 ParticleType = 223
	Phi_1020 ParticleType = 333
	h1_1170 ParticleType = 10223
	f1_1285 ParticleType = 20223
	h1_1380 ParticleType = 10333
	f1_1420 ParticleType = 20333
	Omega_1420 ParticleType = 100223
	f1_1510 ParticleType = 9000223
	h1_1595 ParticleType = 9010223
	Omega_1650 ParticleType = 30223
	Phi_1680 ParticleType = 100333
	f2_1270 ParticleType = 225
	f2_1430 ParticleType = 9000225
	f2_1525 ParticleType = 335
	f2_1565 ParticleType = 9010225
	f2_1640 ParticleType = 9020225
	Eta2_1645 ParticleType = 10225
	f2_1810 ParticleType = 9030225
	Eta2_1870 ParticleType = 10335
	f2_1910 ParticleType = 9040225
	f2_1950 ParticleType = 9050225
	f2_2010 ParticleType = 9060225
	f2_2150 ParticleType = 9070225
	f2_2300 ParticleType = 9080225
	f2_2340 ParticleType = 9090225
	Omega3_1670 ParticleType = 227
	Phi3_1850 ParticleType = 337
	f4_2050 ParticleType = 229
	f4_2220 ParticleType = 9000229
	f4_2300 ParticleType = 9010229
	Proton ParticleType = 2212
	AntiProton ParticleType = -2212
	Neutron ParticleType = 2112
	AntiNeutron ParticleType = -2112
	DeltaPlusPlus ParticleType = 2224
	AntiDeltaPlusPlus ParticleType = -2224
	DeltaPlus ParticleType = 2214
	AntiDeltaPlus ParticleType = -2214
	DeltaZero ParticleType = 2114
	AntiDeltaZero ParticleType = -2114
	DeltaMinus ParticleType = 1114
	AntiDeltaMinus ParticleType = -1114
	Lambda ParticleType = 3122
	AntiLambda ParticleType = -3122
	SigmaPlus ParticleType = 3222
	AntiSigmaPlus ParticleType = -3222
	SigmaZero ParticleType = 3212
	AntiSigmaZero ParticleType = -3212
	SigmaMinus ParticleType = 3112
	AntiSigmaMinus ParticleType = -3112
	SigmaStarPlus ParticleType = 3224
	AntiSigmaStarPlus ParticleType = -3224
	SigmaStarZero ParticleType = 3214
	AntiSigmaStarZero ParticleType = -3214
	SigmaStarMinus ParticleType = 3114
	AntiSigmaStarMinus ParticleType = -3114
	XiZero ParticleType = 3322
	AntiXiZero ParticleType = -3322
	XiMinus ParticleType = 3312
	AntiXiMinus ParticleType = -3312
	XiStarZero ParticleType = 3324
	AntiXiStarZero ParticleType = -3324
	XiStarMinus ParticleType = 3314
	AntiXiStarMinus ParticleType = -3314
	OmegaMinus ParticleType = 3334
	AntiOmegaMinus ParticleType = -3334
	Lambda_c_Plus ParticleType = 4122
	AntiLambda_c_Plus ParticleType = -4122
	Sigma_c_PlusPlus ParticleType = 4222
	AntiSigma_c_PlusPlus ParticleType = -4222
	Sigma_c_Plus ParticleType = 4212
	AntiSigma_c_Plus ParticleType = -4212
	Sigma_c_Zero ParticleType = 4112
	AntiSigma_c_Zero ParticleType = -4112
	Sigma_c_Star_PlusPlus ParticleType = 4224
	AntiSigma_c_Star_PlusPlus ParticleType = -4224
	Sigma_c_Star_Plus ParticleType = 4214
	AntiSigma_c_Star_Plus ParticleType = -4214
	Sigma_c_Star_Zero ParticleType = 4114
	AntiSigma_c_Star_Zero ParticleType = -4114
	Xi_c_Plus ParticleType = 4232
	AntiXi_c_Plus ParticleType = -4232
	Xi_c_Zero ParticleType = 4132
	AntiXi_c_Zero ParticleType = -4132
	Xi_c_Prime_Plus ParticleType = 4322
	AntiXi_c_Prime_Plus ParticleType = -4322
	Xi_c_Prime_Zero ParticleType = 4312
	AntiXi_c_Prime_Zero ParticleType = -4312
	Xi_c_Star_Plus ParticleType = 4324
	AntiXi_c_Star_Plus ParticleType = -4324
	Xi_c_Star_Zero ParticleType = 4314
	AntiXi_c_Star_Zero ParticleType = -4314
	Omega_c_Zero ParticleType = 4332
	AntiOmega_c_Zero ParticleType = -4332
	Omega_c_Star_Zero ParticleType = 4334
	AntiOmega_c_Star_Zero ParticleType = -4334
	Xi_cc_PlusPlus ParticleType = 4412
	AntiXi_cc_PlusPlus ParticleType = -4412
	Xi_cc_Plus ParticleType = 4422
	AntiXi_cc_Plus ParticleType = -4422
	Xi_cc_Star_Plus ParticleType = 4414
	AntiXi_cc_Star_Plus ParticleType = -4414
	Xi_cc_Star_PlusPlus ParticleType = 4424
	AntiXi_cc_Star_PlusPlus ParticleType = -4424
	Omega_cc_Plus ParticleType = 4432
	AntiOmega_cc_Plus ParticleType = -4432
	Omega_cc_Star_Plus ParticleType = 4434
	AntiOmega_cc_Star_Plus ParticleType = -4434
	Omega_ccc_PlusPlus ParticleType = 4444
	AntiOmega_ccc_PlusPlus ParticleType = -4444
	Lambda_b_Zero ParticleType = 5122
	AntiLambda_b_Zero ParticleType = -5122
	Sigma_b_Zero ParticleType = 5212
	AntiSigma_b_Zero ParticleType = -5212
	Sigma_b_Plus ParticleType = 5222
	AntiSigma_b_Plus ParticleType = -5222
	Sigma_b_Minus ParticleType = 5112
	AntiSigma_b_Minus ParticleType = -5112
	Sigma_b_Star_Zero ParticleType = 5214
	AntiSigma_b_Star_Zero ParticleType = -5214
	Sigma_b_Star_Plus ParticleType = 5224
	AntiSigma_b_Star_Plus ParticleType = -5224
	Xi_b_Zero ParticleType = 5132
	AntiXi_b_Zero ParticleType = -5132
	Xi_b_Minus ParticleType = 5232
	AntiXi_b_Minus ParticleType = -5232
	Xi_b_Prime_Zero ParticleType = 5312
	AntiXi_b_Prime_Zero ParticleType = -5312
	Xi_b_Prime_Minus ParticleType = 5322
	AntiXi_b_Prime_Minus ParticleType = -5322
	Xi_b_Star_Zero ParticleType = 5314
	AntiXi_b_Star_Zero ParticleType = -5314
	Xi_b_Star_Minus ParticleType = 5324
	AntiXi_b_Star_Minus ParticleType = -5324
	Omega_b_Minus ParticleType = 5332
	AntiOmega_b_Minus ParticleType = -5332
	Omega_b_Star_Minus ParticleType = 5334
	AntiOmega_b_Star_Minus ParticleType = -5334
	Xi_bc_Zero ParticleType = 5142
	AntiXi_bc_Zero ParticleType = -5142
	Xi_bc_Plus ParticleType = 5242
	AntiXi_bc_Plus ParticleType = -5242
	Xi_bc_Prime_Zero ParticleType = 5412
	AntiXi_bc_Prime_Zero ParticleType = -5412
	Xi_bc_Prime_Plus ParticleType = 5422
	AntiXi_bc_Prime_Plus ParticleType = -5422
	Xi_bc_Star_Zero ParticleType = 5414
	AntiXi_bc_Star_Zero ParticleType = -5414
	Xi_bc_Star_Plus ParticleType = 5424
	AntiXi_bc_Star_Plus ParticleType = -5424
	Omega_bc_Zero ParticleType = 5342
	AntiOmega_bc_Zero ParticleType = -5342
	Omega_bc_Prime_Zero ParticleType = 5432
	AntiOmega_bc_Prime_Zero ParticleType = -5432
	Omega_bc_Star_Zero ParticleType = 5434
	AntiOmega_bc_Star_Zero ParticleType = -5434
	Omega_bcc_Plus ParticleType = 5442
	AntiOmega_bcc_Plus ParticleType = -5442
	Omega_bcc_Star_Plus ParticleType = 5444
	AntiOmega_bcc_Star_Plus ParticleType = -5444
	Xi_bb_Zero ParticleType = 5512
	AntiXi_bb_Zero ParticleType = -5512
	Xi_bb_Minus ParticleType = 5522
	AntiXi_bb_Minus ParticleType = -5522
	Xi_bb_Star_Zero ParticleType = 5514
	AntiXi_bb_Star_Zero ParticleType = -5514
	Xi_bb_Star_Minus ParticleType = 5524
	AntiXi_bb_Star_Minus ParticleType = -5524
	Omega_bb_Minus ParticleType = 5532
	AntiOmega_bb_Minus ParticleType = -5532
	Omega_bb_Star_Minus ParticleType = 5534
	AntiOmega_bb_Star_Minus ParticleType = -5534
	Omega_bbc_Zero ParticleType = 5542
	AntiOmega_bbc_Zero ParticleType = -5542
	Omega_bbc_Star_Zero ParticleType = 5544
	AntiOmega_bbc_Star_Zero ParticleType = -5544
	Omega_bbb_Minus ParticleType = 5554
	AntiOmega_bbb_Minus ParticleType = -5554
	Squark_d_L ParticleType = 1000001
	AntiSquark_d_L ParticleType = -1000001
	Squark_u_L ParticleType = 1000002
	AntiSquark_u_L ParticleType = -1000002
	Squark_s_L ParticleType = 1000003
	AntiSquark_s_L ParticleType = -1000003
	Squark_c_L ParticleType = 1000004
	AntiSquark_c_L ParticleType = -1000004
	Squark_b_1 ParticleType = 1000005
	AntiSquark_b_1 ParticleType = -1000005
	Squark_t_1 ParticleType = 1000006
	AntiSquark_t_1 ParticleType = -1000006
	Selectron_L ParticleType = 1000011
	AntiSelectron_L ParticleType = -1000011
	Sneutrino_e_L ParticleType = 1000012
	AntiSneutrino_e_L ParticleType = -1000012
	Smuon_L ParticleType = 1000013
	AntiSmuon_L ParticleType = -1000013
	Sneutrino_mu_L ParticleType = 1000014
	AntiSneutrino_mu_L ParticleType = -1000014
	Stau_1 ParticleType = 1000015
	AntiStau_1 ParticleType = -1000015
	Sneutrino_tau_L ParticleType = 1000016
	AntiSneutrino_tau_L ParticleType = -1000016
	Squark_d_R ParticleType = 2000001
	AntiSquark_d_R ParticleType = -2000001
	Squark_u_R ParticleType = 2000002
	AntiSquark_u_R ParticleType = -2000002
	Squark_s_R ParticleType = 2000003
	AntiSquark_s_R ParticleType = -2000003
	Squark_c_R ParticleType = 2000004
	AntiSquark_c_R ParticleType = -2000004
	Squark_b_2 ParticleType = 2000005
	AntiSquark_b_2 ParticleType = -2000005
	Squark_t_2 ParticleType = 2000006
	AntiSquark_t_2 ParticleType = -2000006
	Selectron_R ParticleType = 2000011
	AntiSelectron_R ParticleType = -2000011
	Smuon_R ParticleType = 2000013
	AntiSmuon_R ParticleType = -2000013
	Stau_2 ParticleType = 2000015
	AntiStau_2 ParticleType = -2000015
	Gluino ParticleType = 1000021
	Neutralino1 ParticleType = 1000022
	Neutralino2 ParticleType = 1000023
	Chargino1Plus ParticleType = 1000024
	AntiChargino1Plus ParticleType = -1000024
	Neutralino3 ParticleType = 1000025
	Neutralino4 ParticleType = 1000035
	Chargino2Plus ParticleType = 1000037
	AntiChargino2Plus ParticleType = -1000037
	Gravitino ParticleType = 1000039
	TechniPiZero ParticleType = 3000111
	TechniPiPlus ParticleType = 3000211
	AntiTechniPiPlus ParticleType = -3000211
	TechniPiPrimeZero ParticleType = 3000221
	TechniEtaZero ParticleType = 3100221
	TechniRhoZero ParticleType = 3000113
	TechniRhoPlus ParticleType = 3000213
	AntiTechniRhoPlus ParticleType = -3000213
	TechniOmegaZero ParticleType = 3000223
	TechniV8 ParticleType = 3100021
	TechniPi22_1 ParticleType = 3060111
	TechniPi22_8 ParticleType = 3160111
	TechniRho11 ParticleType = 3130113
	TechniRho12 ParticleType = 3140113
	TechniRho21 ParticleType = 3150113
	TechniRho22 ParticleType = 3160113
	RHadron_g_g ParticleType = 1000993
	RHadron_g_dd_bar ParticleType = 1009113
	RHadron_g_ud_bar_Plus ParticleType = 1009213
	AntiRHadron_g_ud_bar_Plus ParticleType = -1009213
	RHadron_g_uu_bar ParticleType = 1009223
	RHadron_g_ds_bar ParticleType = 1009313
	AntiRHadron_g_ds_bar ParticleType = -1009313
	RHadron_g_us_bar_Plus ParticleType = 1009323
	AntiRHadron_g_us_bar_Plus ParticleType = -1009323
	RHadron_g_ss_bar ParticleType = 1009333
	RHadron_g_ddd ParticleType = 1091114
	AntiRHadron_g_ddd ParticleType = -1091114
	RHadron_g_udd_Plus ParticleType = 1092114
	AntiRHadron_g_udd_Plus ParticleType = -1092114
	RHadron_g_uud_PlusPlus ParticleType = 1092214
	AntiRHadron_g_uud_PlusPlus ParticleType = -1092214
	RHadron_g_uuu_PlusPlus ParticleType = 1092224
	AntiRHadron_g_uuu_PlusPlus ParticleType = -1092224
	RHadron_g_sdd ParticleType = 1093114
	AntiRHadron_g_sdd ParticleType = -1093114
	RHadron_g_sud_Plus ParticleType = 1093214
	AntiRHadron_g_sud_Plus ParticleType = -1093214
	RHadron_g_suu_PlusPlus ParticleType = 1093314
	AntiRHadron_g_suu_PlusPlus ParticleType = -1093314
	RHadron_g_ssd_Plus ParticleType = 1093324
	AntiRHadron_g_ssd_Plus ParticleType = -1093324
	RHadron_g_sss ParticleType = 1093334
	AntiRHadron_g_sss ParticleType = -1093334
	RHadron_t1_t1_bar ParticleType = 1000612
	RHadron_t1_d_bar ParticleType = 1000622
	AntiRHadron_t1_d_bar ParticleType = -1000622
	RHadron_t1_s_bar ParticleType = 1000632
	AntiRHadron_t1_s_bar ParticleType = -1000632
	RHadron_t1_b_bar ParticleType = 1000642
	AntiRHadron_t1_b_bar ParticleType = -1000642
	RHadron_t1_u_bar_Plus ParticleType = 1000652
	AntiRHadron_t1_u_bar_Plus ParticleType = -1000652
	RHadron_t1_dd1 ParticleType = 1006113
	AntiRHadron_t1_dd1 ParticleType = -1006113
	RHadron_t1_ud0_Plus ParticleType = 1006211
	AntiRHadron_t1_ud0_Plus ParticleType = -1006211
	RHadron_t1_ud1_Plus ParticleType = 1006213
	AntiRHadron_t1_ud1_Plus ParticleType = -1006213
	RHadron_t1_uu1_PlusPlus ParticleType = 1006223
	AntiRHadron_t1_uu1_PlusPlus ParticleType = -1006223
	RHadron_t1_sd0 ParticleType = 1006311
	AntiRHadron_t1_sd0 ParticleType = -1006311
	RHadron_t1_sd1 ParticleType = 1006313
	AntiRHadron_t1_sd1 ParticleType = -1006313
	RHadron_t1_su0_Plus ParticleType = 1006321
	AntiRHadron_t1_su0_Plus ParticleType = -1006321
	RHadron_t1_su1_Plus ParticleType = 1006323
	AntiRHadron_t1_su1_Plus ParticleType = -1006323
	RHadron_t1_ss1 ParticleType = 1006333
	AntiRHadron_t1_ss1 ParticleType = -1006333
	KaonLong ParticleType = 130
	KaonShort ParticleType = 310
	KaonZero ParticleType = 311
	AntiKaonZero ParticleType = -311
	KaonPlus ParticleType = 321
	AntiKaonPlus ParticleType = -321
	K0Star_800_Zero ParticleType = 9000311
	AntiK0Star_800_Zero ParticleType = -9000311
	K0Star_800_Plus ParticleType = 9000321
	AntiK0Star_800_Plus ParticleType = -9000321
	K0Star_1430_Zero ParticleType = 10311
	AntiK0Star_1430_Zero ParticleType = -10311
	K0Star_1430_Plus ParticleType = 10321
	AntiK0Star_1430_Plus ParticleType = -10321
	K_1460_Zero ParticleType = 100311
	AntiK_1460_Zero ParticleType = -100311
	K_1460_Plus ParticleType = 100321
	AntiK_1460_Plus ParticleType = -100321
	K_1830_Zero ParticleType = 9010311
	AntiK_1830_Zero ParticleType = -9010311
	K_1830_Plus ParticleType = 9010321
	AntiK_1830_Plus ParticleType = -9010321
	K0Star_1950_Zero ParticleType = 9020311
	AntiK0Star_1950_Zero ParticleType = -9020311
	K0Star_1950_Plus ParticleType = 9020321
	AntiK0Star_1950_Plus ParticleType = -9020321
	KStar_892_Zero ParticleType = 313
	AntiKStar_892_Zero ParticleType = -313
	KStar_892_Plus ParticleType = 323
	AntiKStar_892_Plus ParticleType = -323
	K1_1270_Zero ParticleType = 10313
	AntiK1_1270_Zero ParticleType = -10313
	K1_1270_Plus ParticleType = 10323
	AntiK1_1270_Plus ParticleType = -10323
	K1_1400_Zero ParticleType = 20313
	AntiK1_1400_Zero ParticleType = -20313
	K1_1400_Plus ParticleType = 20323
	AntiK1_1400_Plus ParticleType = -20323
	KStar_1410_Zero ParticleType = 100313
	AntiKStar_1410_Zero ParticleType = -100313
	KStar_1410_Plus ParticleType = 100323
	AntiKStar_1410_Plus ParticleType = -100323
	K1_1650_Zero ParticleType = 9000313
	AntiK1_1650_Zero ParticleType = -9000313
	K1_1650_Plus ParticleType = 9000323
	AntiK1_1650_Plus ParticleType = -9000323
	KStar_1680_Zero ParticleType = 30313
	AntiKStar_1680_Zero ParticleType = -30313
	KStar_1680_Plus ParticleType = 30323
	AntiKStar_1680_Plus ParticleType = -30323
	K2Star_1430_Zero ParticleType = 315
	AntiK2Star_1430_Zero ParticleType = -315
	K2Star_1430_Plus ParticleType = 325
	AntiK2Star_1430_Plus ParticleType = -325
	K2_1580_Zero ParticleType = 9000315
	AntiK2_1580_Zero ParticleType = -9000315
	K2_1580_Plus ParticleType = 9000325
	AntiK2_1580_Plus ParticleType = -9000325
	K2_1770_Zero ParticleType = 10315
	AntiK2_1770_Zero ParticleType = -10315
	K2_1770_Plus ParticleType = 10325
	AntiK2_1770_Plus ParticleType = -10325
	K2_1820_Zero ParticleType = 20315
	AntiK2_1820_Zero ParticleType = -20315
	K2_1820_Plus ParticleType = 20325
	AntiK2_1820_Plus ParticleType = -20325
	K2_1980_Zero ParticleType = 9010315
	AntiK2_1980_Zero ParticleType = -9010315
	K2_1980_Plus ParticleType = 9010325
	AntiK2_1980_Plus ParticleType = -9010325
	K2_2250_Zero ParticleType = 9020315
	AntiK2_2250_Zero ParticleType = -9020315
	K2_2250_Plus ParticleType = 9020325
	AntiK2_2250_Plus ParticleType = -9020325
	K3Star_1780_Zero ParticleType = 317
	AntiK3Star_1780_Zero ParticleType = -317
	K3Star_1780_Plus ParticleType = 327
	AntiK3Star_1780_Plus ParticleType = -327
	K3_2320_Zero ParticleType = 9010317
	AntiK3_2320_Zero ParticleType = -9010317
	K3_2320_Plus ParticleType = 9010327
	AntiK3_2320_Plus ParticleType = -9010327
	K4Star_2045_Zero ParticleType = 319
	AntiK4Star_2045_Zero ParticleType = -319
	K4Star_2045_Plus ParticleType = 329
	AntiK4Star_2045_Plus ParticleType = -329
	K4_2500_Zero ParticleType = 9000319
	AntiK4_2500_Zero ParticleType = -9000319
	K4_2500_Plus ParticleType = 9000329
	AntiK4_2500_Plus ParticleType = -9000329
	DPlus ParticleType = 411
	AntiDPlus ParticleType = -411
	DZero ParticleType = 421
	AntiDZero ParticleType = -421
	D0Star_2400_Plus ParticleType = 10411
	AntiD0Star_2400_Plus ParticleType = -10411
	D0Star_2400_Zero ParticleType = 10421
	AntiD0Star_2400_Zero ParticleType = -10421
	DStar_2010_Plus ParticleType = 413
	AntiDStar_2010_Plus ParticleType = -413
	DStar_2007_Zero ParticleType = 423
	AntiDStar_2007_Zero ParticleType = -423
	D1_2420_Plus ParticleType = 10413
	AntiD1_2420_Plus ParticleType = -10413
	D1_2420_Zero ParticleType = 10423
	AntiD1_2420_Zero ParticleType = -10423
	D1_H_Plus ParticleType = 20413
	AntiD1_H_Plus ParticleType = -20413
	D1_2430_Zero ParticleType = 20423
	AntiD1_2430_Zero ParticleType = -20423
	D2Star_2460_Plus ParticleType = 415
	AntiD2Star_2460_Plus ParticleType = -415
	D2Star_2460_Zero ParticleType = 425
	AntiD2Star_2460_Zero ParticleType = -425
	DsPlus ParticleType = 431
	AntiDsPlus ParticleType = -431
	Ds0Star_2317_Plus ParticleType = 10431
	AntiDs0Star_2317_Plus ParticleType = -10431
	DsStarPlus ParticleType = 433
	AntiDsStarPlus ParticleType = -433
	Ds1_2536_Plus ParticleType = 10433
	AntiDs1_2536_Plus ParticleType = -10433
	Ds1_2460_Plus ParticleType = 20433
	AntiDs1_2460_Plus ParticleType = -20433
	Ds2_2573_Plus ParticleType = 435
	AntiDs2_2573_Plus ParticleType = -435
	BZero ParticleType = 511
	AntiBZero ParticleType = -511
	BPlus ParticleType = 521
	AntiBPlus ParticleType = -521
	B0Star_Zero ParticleType = 10511
	AntiB0Star_Zero ParticleType = -10511
	B0Star_Plus ParticleType = 10521
	AntiB0Star_Plus ParticleType = -10521
	BStar_Zero ParticleType = 513
	AntiBStar_Zero ParticleType = -513
	BStar_Plus ParticleType = 523
	AntiBStar_Plus ParticleType = -523
	B1_L_Zero ParticleType = 10513
	AntiB1_L_Zero ParticleType = -10513
	B1_L_Plus ParticleType = 10523
	AntiB1_L_Plus ParticleType = -10523
	B1_H_Zero ParticleType = 20513
	AntiB1_H_Zero ParticleType = -20513
	B1_H_Plus ParticleType = 20523
	AntiB1_H_Plus ParticleType = -20523
	B2Star_Zero ParticleType = 515
	AntiB2Star_Zero ParticleType = -515
	B2Star_Plus ParticleType = 525
	AntiB2Star_Plus ParticleType = -525
	Bs_Zero ParticleType = 531
	AntiBs_Zero ParticleType = -531
	Bs0Star_Zero ParticleType = 10531
	AntiBs0Star_Zero ParticleType = -10531
	BsStar_Zero ParticleType = 533
	AntiBsStar_Zero ParticleType = -533
	Bs1_L_Zero ParticleType = 10533
	AntiBs1_L_Zero ParticleType = -10533
	Bs1_H_Zero ParticleType = 20533
	AntiBs1_H_Zero ParticleType = -20533
	Bs2Star_Zero ParticleType = 535
	AntiBs2Star_Zero ParticleType = -535
	Bc_Plus ParticleType = 541
	AntiBc_Plus ParticleType = -541
	Bc0Star_Plus ParticleType = 10541
	AntiBc0Star_Plus ParticleType = -10541
	BcStar_Plus ParticleType = 543
	AntiBcStar_Plus ParticleType = -543
	Bc1_L_Plus ParticleType = 10543
	AntiBc1_L_Plus ParticleType = -10543
	Bc1_H_Plus ParticleType = 20543
	AntiBc1_H_Plus ParticleType = -20543
	Bc2Star_Plus ParticleType = 545
	AntiBc2Star_Plus ParticleType = -545
	Eta_c_1S ParticleType = 441
	Chi_c0_1P ParticleType = 10441
	Eta_c_2S ParticleType = 100441
	J_psi_1S ParticleType = 443
	h_c_1P ParticleType = 10443
	Chi_c1_1P ParticleType = 20443
	psi_2S ParticleType = 100443
	psi_3770 ParticleType = 30443
	psi_4040 ParticleType = 9000443
	psi_4160 ParticleType = 9010443
	psi_4415 ParticleType = 9020443
	Chi_c2_1P ParticleType = 445
	Chi_c2_2P ParticleType = 100445
	Eta_b_1S ParticleType = 551
	Chi_b0_1P ParticleType = 10551
	Eta_b_2S ParticleType = 100551
	Chi_b0_2P ParticleType = 110551
	Eta_b_3S ParticleType = 200551
	Chi_b0_3P ParticleType = 210551
	Upsilon_1S ParticleType = 553
	h_b_1P ParticleType = 10553
	Chi_b1_1P ParticleType = 20553
	Upsilon1_1D ParticleType = 30553
	Upsilon_2S ParticleType = 100553
	h_b_2P ParticleType = 110553
	Chi_b1_2P ParticleType = 120553
	Upsilon1_2D ParticleType = 130553
	Upsilon_3S ParticleType = 200553
	h_b_3P ParticleType = 210553
	Chi_b1_3P ParticleType = 220553
	Upsilon_4S ParticleType = 300553
	Upsilon_10860 ParticleType = 9000553
	Upsilon_11020 ParticleType = 9010553
	Chi_b2_1P ParticleType = 555
	Eta_b2_1D ParticleType = 10555
	Upsilon2_1D ParticleType = 20555
	Chi_b2_2P ParticleType = 100555
	Eta_b2_2D ParticleType = 110555
	Upsilon2_2D ParticleType = 120555
	Chi_b2_3P ParticleType = 200555
	Upsilon3_1D ParticleType = 557
	Upsilon3_2D ParticleType = 100557
	ThetaPlus ParticleType = 9221132
	AntiThetaPlus ParticleType = -9221132
	PhiMinusMinus ParticleType = 9331122
	AntiPhiMinusMinus ParticleType = -9331122
	ExcitedDownQuark ParticleType = 4000001
	ExcitedUpQuark ParticleType = 4000002
	ExcitedElectron ParticleType = 4000011
	ExcitedElectronNeutrino ParticleType = 4000012
	ExcitedAntiDownQuark ParticleType = -4000001
	ExcitedAntiUpQuark ParticleType = -4000002
	ExcitedPositron ParticleType = -4000011
	ExcitedAntiElectronNeutrino ParticleType = -4000012
	Graviton ParticleType = 39
	RHadron ParticleType = 41
	Leptoquark ParticleType = 42
	Reggeon ParticleType = 110
	Pomeron ParticleType = 990
	Odderon ParticleType = 9990
	Deuteron ParticleType = 1000010020
	AntiDeuteron ParticleType = -1000010020
	Triton ParticleType = 1000010030
	AntiTriton ParticleType = -1000010030
	Helium3Nucleus ParticleType = 1000020030
	AntiHelium3Nucleus ParticleType = -1000020030
	HeliumNucleus ParticleType = 1000020040
	AntiHeliumNucleus ParticleType = -1000020040
	Lithium6Nucleus ParticleType = 1000030060
	AntiLithium6Nucleus ParticleType = -1000030060
	Lithium7Nucleus ParticleType = 1000030070
	AntiLithium7Nucleus ParticleType = -1000030070
	Beryllium7Nucleus ParticleType = 1000040070
	AntiBeryllium7Nucleus ParticleType = -1000040070
	Beryllium9Nucleus ParticleType = 1000040090
	AntiBeryllium9Nucleus ParticleType = -1000040090
	Boron10Nucleus ParticleType = 1000050100
	AntiBoron10Nucleus ParticleType = -1000050100
	Boron11Nucleus ParticleType = 1000050110
	AntiBoron11Nucleus ParticleType = -1000050110
	Carbon11Nucleus ParticleType = 1000060110
	AntiCarbon11Nucleus ParticleType = -1000060110
	CarbonNucleus ParticleType = 1000060120
	AntiCarbonNucleus ParticleType = -1000060120
	Nitrogen14Nucleus ParticleType = 1000070140
	AntiNitrogen14Nucleus ParticleType = -1000070140
	Oxygen15Nucleus ParticleType = 1000080150
	AntiOxygen15Nucleus ParticleType = -1000080150
	OxygenNucleus ParticleType = 1000080160
	AntiOxygenNucleus ParticleType = -1000080160

	// Unsupported marks a particle species a format cannot represent or a
	// decoder could not classify.
	Unsupported ParticleType = 99
)

// particleNames maps each known ParticleType to its catalog name, used by
// String and by format-specific decoders that report unrecognized codes.
var particleNames = map[ParticleType]string{
	DownQuark: "DownQuark",
	UpQuark: "UpQuark",
	StrangeQuark: "StrangeQuark",
	CharmQuark: "CharmQuark",
	BottomQuark: "BottomQuark",
	TopQuark: "TopQuark",
	AntiDownQuark: "AntiDownQuark",
	AntiUpQuark: "AntiUpQuark",
	AntiStrangeQuark: "AntiStrangeQuark",
	AntiCharmQuark: "AntiCharmQuark",
	AntiBottomQuark: "AntiBottomQuark",
	AntiTopQuark: "AntiTopQuark",
	BPrimeQuark: "BPrimeQuark",
	AntiBPrimeQuark: "AntiBPrimeQuark",
	TPrimeQuark: "TPrimeQuark",
	AntiTPrimeQuark: "AntiTPrimeQuark",
	Electron: "Electron",
	Positron: "Positron",
	ElectronNeutrino: "ElectronNeutrino",
	AntiElectronNeutrino: "AntiElectronNeutrino",
	Muon: "Muon",
	AntiMuon: "AntiMuon",
	MuonNeutrino: "MuonNeutrino",
	AntiMuonNeutrino: "AntiMuonNeutrino",
	Tau: "Tau",
	AntiTau: "AntiTau",
	TauNeutrino: "TauNeutrino",
	AntiTauNeutrino: "AntiTauNeutrino",
	TauPrime: "TauPrime",
	AntiTauPrime: "AntiTauPrime",
	TauPrimeNeutrino: "TauPrimeNeutrino",
	AntiTauPrimeNeutrino: "AntiTauPrimeNeutrino",
	Gluon: "Gluon",
	Photon: "Photon",
	ZBoson: "ZBoson",
	WBoson: "WBoson",
	AntiWBoson: "AntiWBoson",
	HiggsBoson: "HiggsBoson",
	ZPrimeBoson: "ZPrimeBoson",
	ZDoublePrimeBoson: "ZDoublePrimeBoson",
	WPrimeBoson: "WPrimeBoson",
	AntiWPrimeBoson: "AntiWPrimeBoson",
	NeutralHiggsBoson: "NeutralHiggsBoson",
	PseudoscalarHiggsBoson: "PseudoscalarHiggsBoson",
	ChargedHiggsBoson: "ChargedHiggsBoson",
	AntiChargedHiggsBoson: "AntiChargedHiggsBoson",
	Diquark_dd_1: "Diquark_dd_1",
	AntiDiquark_dd_1: "AntiDiquark_dd_1",
	Diquark_ud_0: "Diquark_ud_0",
	AntiDiquark_ud_0: "AntiDiquark_ud_0",
	Diquark_ud_1: "Diquark_ud_1",
	AntiDiquark_ud_1: "AntiDiquark_ud_1",
	Diquark_uu_1: "Diquark_uu_1",
	AntiDiquark_uu_1: "AntiDiquark_uu_1",
	Diquark_sd_0: "Diquark_sd_0",
	AntiDiquark_sd_0: "AntiDiquark_sd_0",
	Diquark_sd_1: "Diquark_sd_1",
	AntiDiquark_sd_1: "AntiDiquark_sd_1",
	Diquark_su_0: "Diquark_su_0",
	AntiDiquark_su_0: "AntiDiquark_su_0",
	Diquark_su_1: "Diquark_su_1",
	AntiDiquark_su_1: "AntiDiquark_su_1",
	Diquark_ss_1: "Diquark_ss_1",
	AntiDiquark_ss_1: "AntiDiquark_ss_1",
	Diquark_cd_0: "Diquark_cd_0",
	AntiDiquark_cd_0: "AntiDiquark_cd_0",
	Diquark_cd_1: "Diquark_cd_1",
	AntiDiquark_cd_1: "AntiDiquark_cd_1",
	Diquark_cu_0: "Diquark_cu_0",
	AntiDiquark_cu_0: "AntiDiquark_cu_0",
	Diquark_cu_1: "Diquark_cu_1",
	AntiDiquark_cu_1: "AntiDiquark_cu_1",
	Diquark_cs_0: "Diquark_cs_0",
	AntiDiquark_cs_0: "AntiDiquark_cs_0",
	Diquark_cs_1: "Diquark_cs_1",
	AntiDiquark_cs_1: "AntiDiquark_cs_1",
	Diquark_cc_1: "Diquark_cc_1",
	AntiDiquark_cc_1: "AntiDiquark_cc_1",
	Diquark_bd_0: "Diquark_bd_0",
	AntiDiquark_bd_0: "AntiDiquark_bd_0",
	Diquark_bd_1: "Diquark_bd_1",
	AntiDiquark_bd_1: "AntiDiquark_bd_1",
	Diquark_bu_0: "Diquark_bu_0",
	AntiDiquark_bu_0: "AntiDiquark_bu_0",
	Diquark_bu_1: "Diquark_bu_1",
	AntiDiquark_bu_1: "AntiDiquark_bu_1",
	Diquark_bs_0: "Diquark_bs_0",
	AntiDiquark_bs_0: "AntiDiquark_bs_0",
	Diquark_bs_1: "Diquark_bs_1",
	AntiDiquark_bs_1: "AntiDiquark_bs_1",
	Diquark_bc_0: "Diquark_bc_0",
	AntiDiquark_bc_0: "AntiDiquark_bc_0",
	Diquark_bc_1: "Diquark_bc_1",
	AntiDiquark_bc_1: "AntiDiquark_bc_1",
	Diquark_bb_1: "Diquark_bb_1",
	AntiDiquark_bb_1: "AntiDiquark_bb_1",
	PionZero: "PionZero",
	PionPlus: "PionPlus",
	AntiPionPlus: "AntiPionPlus",
	a0_980_Zero: "a0_980_Zero",
	a0_980_Plus: "a0_980_Plus",
	Anti_a0_980_Plus: "Anti_a0_980_Plus",
	Pi_1300_Zero: "Pi_1300_Zero",
	Pi_1300_Plus: "Pi_1300_Plus",
	AntiPi_1300_Plus: "AntiPi_1300_Plus",
	a0_1450_Zero: "a0_1450_Zero",
	a0_1450_Plus: "a0_1450_Plus",
	Anti_a0_1450_Plus: "Anti_a0_1450_Plus",
	Pi_1800_Zero: "Pi_1800_Zero",
	Pi_1800_Plus: "Pi_1800_Plus",
	AntiPi_1800_Plus: "AntiPi_1800_Plus",
	Rho_770_Zero: "Rho_770_Zero",
	Rho_770_Plus: "Rho_770_Plus",
	AntiRho_770_Plus: "AntiRho_770_Plus",
	b1_1235_Zero: "b1_1235_Zero",
	b1_1235_Plus: "b1_1235_Plus",
	Anti_b1_1235_Plus: "Anti_b1_1235_Plus",
	a1_1260_Zero: "a1_1260_Zero",
	a1_1260_Plus: "a1_1260_Plus",
	Anti_a1_1260_Plus: "Anti_a1_1260_Plus",
	Pi1_1400_Zero: "Pi1_1400_Zero",
	Pi1_1400_Plus: "Pi1_1400_Plus",
	Anti_Pi1_1400_Plus: "Anti_Pi1_1400_Plus",
	Rho_1450_Zero: "Rho_1450_Zero",
	Rho_1450_Plus: "Rho_1450_Plus",
	AntiRho_1450_Plus: "AntiRho_1450_Plus",
	Pi1_1600_Zero: "Pi1_1600_Zero",
	Pi1_1600_Plus: "Pi1_1600_Plus",
	AntiPi1_1600_Plus: "AntiPi1_1600_Plus",
	a1_1640_Zero: "a1_1640_Zero",
	a1_1640_Plus: "a1_1640_Plus",
	Anti_a1_1640_Plus: "Anti_a1_1640_Plus",
	Rho_1700_Zero: "Rho_1700_Zero",
	Rho_1700_Plus: "Rho_1700_Plus",
	AntiRho_1700_Plus: "AntiRho_1700_Plus",
	Rho_1900_Zero: "Rho_1900_Zero",
	Rho_1900_Plus: "Rho_1900_Plus",
	AntiRho_1900_Plus: "AntiRho_1900_Plus",
	Rho_2150_Zero: "Rho_2150_Zero",
	Rho_2150_Plus: "Rho_2150_Plus",
	AntiRho_2150_Plus: "AntiRho_2150_Plus",
	a2_1320_Zero: "a2_1320_Zero",
	a2_1320_Plus: "a2_1320_Plus",
	Anti_a2_1320_Plus: "Anti_a2_1320_Plus",
	Pi2_1670_Zero: "Pi2_1670_Zero",
	Pi2_1670_Plus: "Pi2_1670_Plus",
	AntiPi2_1670_Plus: "AntiPi2_1670_Plus",
	a2_1700_Zero: "a2_1700_Zero",
	a2_1700_Plus: "a2_1700_Plus",
	Anti_a2_1700_Plus: "Anti_a2_1700_Plus",
	Pi2_2100_Zero: "Pi2_2100_Zero",
	Pi2_2100_Plus: "Pi2_2100_Plus",
	AntiPi2_2100_Plus: "AntiPi2_2100_Plus",
	Rho3_1690_Zero: "Rho3_1690_Zero",
	Rho3_1690_Plus: "Rho3_1690_Plus",
	AntiRho3_1690_Plus: "AntiRho3_1690_Plus",
	Rho3_1990_Zero: "Rho3_1990_Zero",
	Rho3_1990_Plus: "Rho3_1990_Plus",
	AntiRho3_1990_Plus: "AntiRho3_1990_Plus",
	Rho3_2250_Zero: "Rho3_2250_Zero",
	Rho3_2250_Plus: "Rho3_2250_Plus",
	AntiRho3_2250_Plus: "AntiRho3_2250_Plus",
	a4_2040_Zero: "a4_2040_Zero",
	a4_2040_Plus: "a4_2040_Plus",
	Anti_a4_2040_Plus: "Anti_a4_2040_Plus",
	Eta: "Eta",
	EtaPrime_958: "EtaPrime_958",
	f0_600: "f0_600",
	f0_980: "f0_980",
	Eta_1295: "Eta_1295",
	f0_1370: "f0_1370",
	Eta_1405: "Eta_1405",
	Eta_1475: "Eta_1475",
	f0_1500: "f0_1500",
	f0_1710: "f0_1710",
	Eta_1760: "Eta_1760",
	f0_2020: "f0_2020",
	f0_2100: "f0_2100",
	f0_2200: "f0_2200",
	Eta_2225: "Eta_2225",
	Omega_782: "Omega_782",
	Phi_1020: "Phi_1020",
	h1_1170: "h1_1170",
	f1_1285: "f1_1285",
	h1_1380: "h1_1380",
	f1_1420: "f1_1420",
	Omega_1420: "Omega_1420",
	f1_1510: "f1_1510",
	h1_1595: "h1_1595",
	Omega_1650: "Omega_1650",
	Phi_1680: "Phi_1680",
	f2_1270: "f2_1270",
	f2_1430: "f2_1430",
	f2_1525: "f2_1525",
	f2_1565: "f2_1565",
	f2_1640: "f2_1640",
	Eta2_1645: "Eta2_1645",
	f2_1810: "f2_1810",
	Eta2_1870: "Eta2_1870",
	f2_1910: "f2_1910",
	f2_1950: "f2_1950",
	f2_2010: "f2_2010",
	f2_2150: "f2_2150",
	f2_2300: "f2_2300",
	f2_2340: "f2_2340",
	Omega3_1670: "Omega3_1670",
	Phi3_1850: "Phi3_1850",
	f4_2050: "f4_2050",
	f4_2220: "f4_2220",
	f4_2300: "f4_2300",
	Proton: "Proton",
	AntiProton: "AntiProton",
	Neutron: "Neutron",
	AntiNeutron: "AntiNeutron",
	DeltaPlusPlus: "DeltaPlusPlus",
	AntiDeltaPlusPlus: "AntiDeltaPlusPlus",
	DeltaPlus: "DeltaPlus",
	AntiDeltaPlus: "AntiDeltaPlus",
	DeltaZero: "DeltaZero",
	AntiDeltaZero: "AntiDeltaZero",
	DeltaMinus: "DeltaMinus",
	AntiDeltaMinus: "AntiDeltaMinus",
	Lambda: "Lambda",
	AntiLambda: "AntiLambda",
	SigmaPlus: "SigmaPlus",
	AntiSigmaPlus: "AntiSigmaPlus",
	SigmaZero: "SigmaZero",
	AntiSigmaZero: "AntiSigmaZero",
	SigmaMinus: "SigmaMinus",
	AntiSigmaMinus: "AntiSigmaMinus",
	SigmaStarPlus: "SigmaStarPlus",
	AntiSigmaStarPlus: "AntiSigmaStarPlus",
	SigmaStarZero: "SigmaStarZero",
	AntiSigmaStarZero: "AntiSigmaStarZero",
	SigmaStarMinus: "SigmaStarMinus",
	AntiSigmaStarMinus: "AntiSigmaStarMinus",
	XiZero: "XiZero",
	AntiXiZero: "AntiXiZero",
	XiMinus: "XiMinus",
	AntiXiMinus: "AntiXiMinus",
	XiStarZero: "XiStarZero",
	AntiXiStarZero: "AntiXiStarZero",
	XiStarMinus: "XiStarMinus",
	AntiXiStarMinus: "AntiXiStarMinus",
	OmegaMinus: "OmegaMinus",
	AntiOmegaMinus: "AntiOmegaMinus",
	Lambda_c_Plus: "Lambda_c_Plus",
	AntiLambda_c_Plus: "AntiLambda_c_Plus",
	Sigma_c_PlusPlus: "Sigma_c_PlusPlus",
	AntiSigma_c_PlusPlus: "AntiSigma_c_PlusPlus",
	Sigma_c_Plus: "Sigma_c_Plus",
	AntiSigma_c_Plus: "AntiSigma_c_Plus",
	Sigma_c_Zero: "Sigma_c_Zero",
	AntiSigma_c_Zero: "AntiSigma_c_Zero",
	Sigma_c_Star_PlusPlus: "Sigma_c_Star_PlusPlus",
	AntiSigma_c_Star_PlusPlus: "AntiSigma_c_Star_PlusPlus",
	Sigma_c_Star_Plus: "Sigma_c_Star_Plus",
	AntiSigma_c_Star_Plus: "AntiSigma_c_Star_Plus",
	Sigma_c_Star_Zero: "Sigma_c_Star_Zero",
	AntiSigma_c_Star_Zero: "AntiSigma_c_Star_Zero",
	Xi_c_Plus: "Xi_c_Plus",
	AntiXi_c_Plus: "AntiXi_c_Plus",
	Xi_c_Zero: "Xi_c_Zero",
	AntiXi_c_Zero: "AntiXi_c_Zero",
	Xi_c_Prime_Plus: "Xi_c_Prime_Plus",
	AntiXi_c_Prime_Plus: "AntiXi_c_Prime_Plus",
	Xi_c_Prime_Zero: "Xi_c_Prime_Zero",
	AntiXi_c_Prime_Zero: "AntiXi_c_Prime_Zero",
	Xi_c_Star_Plus: "Xi_c_Star_Plus",
	AntiXi_c_Star_Plus: "AntiXi_c_Star_Plus",
	Xi_c_Star_Zero: "Xi_c_Star_Zero",
	AntiXi_c_Star_Zero: "AntiXi_c_Star_Zero",
	Omega_c_Zero: "Omega_c_Zero",
	AntiOmega_c_Zero: "AntiOmega_c_Zero",
	Omega_c_Star_Zero: "Omega_c_Star_Zero",
	AntiOmega_c_Star_Zero: "AntiOmega_c_Star_Zero",
	Xi_cc_PlusPlus: "Xi_cc_PlusPlus",
	AntiXi_cc_PlusPlus: "AntiXi_cc_PlusPlus",
	Xi_cc_Plus: "Xi_cc_Plus",
	AntiXi_cc_Plus: "AntiXi_cc_Plus",
	Xi_cc_Star_Plus: "Xi_cc_Star_Plus",
	AntiXi_cc_Star_Plus: "AntiXi_cc_Star_Plus",
	Xi_cc_Star_PlusPlus: "Xi_cc_Star_PlusPlus",
	AntiXi_cc_Star_PlusPlus: "AntiXi_cc_Star_PlusPlus",
	Omega_cc_Plus: "Omega_cc_Plus",
	AntiOmega_cc_Plus: "AntiOmega_cc_Plus",
	Omega_cc_Star_Plus: "Omega_cc_Star_Plus",
	AntiOmega_cc_Star_Plus: "AntiOmega_cc_Star_Plus",
	Omega_ccc_PlusPlus: "Omega_ccc_PlusPlus",
	AntiOmega_ccc_PlusPlus: "AntiOmega_ccc_PlusPlus",
	Lambda_b_Zero: "Lambda_b_Zero",
	AntiLambda_b_Zero: "AntiLambda_b_Zero",
	Sigma_b_Zero: "Sigma_b_Zero",
	AntiSigma_b_Zero: "AntiSigma_b_Zero",
	Sigma_b_Plus: "Sigma_b_Plus",
	AntiSigma_b_Plus: "AntiSigma_b_Plus",
	Sigma_b_Minus: "Sigma_b_Minus",
	AntiSigma_b_Minus: "AntiSigma_b_Minus",
	Sigma_b_Star_Zero: "Sigma_b_Star_Zero",
	AntiSigma_b_Star_Zero: "AntiSigma_b_Star_Zero",
	Sigma_b_Star_Plus: "Sigma_b_Star_Plus",
	AntiSigma_b_Star_Plus: "AntiSigma_b_Star_Plus",
	Xi_b_Zero: "Xi_b_Zero",
	AntiXi_b_Zero: "AntiXi_b_Zero",
	Xi_b_Minus: "Xi_b_Minus",
	AntiXi_b_Minus: "AntiXi_b_Minus",
	Xi_b_Prime_Zero: "Xi_b_Prime_Zero",
	AntiXi_b_Prime_Zero: "AntiXi_b_Prime_Zero",
	Xi_b_Prime_Minus: "Xi_b_Prime_Minus",
	AntiXi_b_Prime_Minus: "AntiXi_b_Prime_Minus",
	Xi_b_Star_Zero: "Xi_b_Star_Zero",
	AntiXi_b_Star_Zero: "AntiXi_b_Star_Zero",
	Xi_b_Star_Minus: "Xi_b_Star_Minus",
	AntiXi_b_Star_Minus: "AntiXi_b_Star_Minus",
	Omega_b_Minus: "Omega_b_Minus",
	AntiOmega_b_Minus: "AntiOmega_b_Minus",
	Omega_b_Star_Minus: "Omega_b_Star_Minus",
	AntiOmega_b_Star_Minus: "AntiOmega_b_Star_Minus",
	Xi_bc_Zero: "Xi_bc_Zero",
	AntiXi_bc_Zero: "AntiXi_bc_Zero",
	Xi_bc_Plus: "Xi_bc_Plus",
	AntiXi_bc_Plus: "AntiXi_bc_Plus",
	Xi_bc_Prime_Zero: "Xi_bc_Prime_Zero",
	AntiXi_bc_Prime_Zero: "AntiXi_bc_Prime_Zero",
	Xi_bc_Prime_Plus: "Xi_bc_Prime_Plus",
	AntiXi_bc_Prime_Plus: "AntiXi_bc_Prime_Plus",
	Xi_bc_Star_Zero: "Xi_bc_Star_Zero",
	AntiXi_bc_Star_Zero: "AntiXi_bc_Star_Zero",
	Xi_bc_Star_Plus: "Xi_bc_Star_Plus",
	AntiXi_bc_Star_Plus: "AntiXi_bc_Star_Plus",
	Omega_bc_Zero: "Omega_bc_Zero",
	AntiOmega_bc_Zero: "AntiOmega_bc_Zero",
	Omega_bc_Prime_Zero: "Omega_bc_Prime_Zero",
	AntiOmega_bc_Prime_Zero: "AntiOmega_bc_Prime_Zero",
	Omega_bc_Star_Zero: "Omega_bc_Star_Zero",
	AntiOmega_bc_Star_Zero: "AntiOmega_bc_Star_Zero",
	Omega_bcc_Plus: "Omega_bcc_Plus",
	AntiOmega_bcc_Plus: "AntiOmega_bcc_Plus",
	Omega_bcc_Star_Plus: "Omega_bcc_Star_Plus",
	AntiOmega_bcc_Star_Plus: "AntiOmega_bcc_Star_Plus",
	Xi_bb_Zero: "Xi_bb_Zero",
	AntiXi_bb_Zero: "AntiXi_bb_Zero",
	Xi_bb_Minus: "Xi_bb_Minus",
	AntiXi_bb_Minus: "AntiXi_bb_Minus",
	Xi_bb_Star_Zero: "Xi_bb_Star_Zero",
	AntiXi_bb_Star_Zero: "AntiXi_bb_Star_Zero",
	Xi_bb_Star_Minus: "Xi_bb_Star_Minus",
	AntiXi_bb_Star_Minus: "AntiXi_bb_Star_Minus",
	Omega_bb_Minus: "Omega_bb_Minus",
	AntiOmega_bb_Minus: "AntiOmega_bb_Minus",
	Omega_bb_Star_Minus: "Omega_bb_Star_Minus",
	AntiOmega_bb_Star_Minus: "AntiOmega_bb_Star_Minus",
	Omega_bbc_Zero: "Omega_bbc_Zero",
	AntiOmega_bbc_Zero: "AntiOmega_bbc_Zero",
	Omega_bbc_Star_Zero: "Omega_bbc_Star_Zero",
	AntiOmega_bbc_Star_Zero: "AntiOmega_bbc_Star_Zero",
	Omega_bbb_Minus: "Omega_bbb_Minus",
	AntiOmega_bbb_Minus: "AntiOmega_bbb_Minus",
	Squark_d_L: "Squark_d_L",
	AntiSquark_d_L: "AntiSquark_d_L",
	Squark_u_L: "Squark_u_L",
	AntiSquark_u_L: "AntiSquark_u_L",
	Squark_s_L: "Squark_s_L",
	AntiSquark_s_L: "AntiSquark_s_L",
	Squark_c_L: "Squark_c_L",
	AntiSquark_c_L: "AntiSquark_c_L",
	Squark_b_1: "Squark_b_1",
	AntiSquark_b_1: "AntiSquark_b_1",
	Squark_t_1: "Squark_t_1",
	AntiSquark_t_1: "AntiSquark_t_1",
	Selectron_L: "Selectron_L",
	AntiSelectron_L: "AntiSelectron_L",
	Sneutrino_e_L: "Sneutrino_e_L",
	AntiSneutrino_e_L: "AntiSneutrino_e_L",
	Smuon_L: "Smuon_L",
	AntiSmuon_L: "AntiSmuon_L",
	Sneutrino_mu_L: "Sneutrino_mu_L",
	AntiSneutrino_mu_L: "AntiSneutrino_mu_L",
	Stau_1: "Stau_1",
	AntiStau_1: "AntiStau_1",
	Sneutrino_tau_L: "Sneutrino_tau_L",
	AntiSneutrino_tau_L: "AntiSneutrino_tau_L",
	Squark_d_R: "Squark_d_R",
	AntiSquark_d_R: "AntiSquark_d_R",
	Squark_u_R: "Squark_u_R",
	AntiSquark_u_R: "AntiSquark_u_R",
	Squark_s_R: "Squark_s_R",
	AntiSquark_s_R: "AntiSquark_s_R",
	Squark_c_R: "Squark_c_R",
	AntiSquark_c_R: "AntiSquark_c_R",
	Squark_b_2: "Squark_b_2",
	AntiSquark_b_2: "AntiSquark_b_2",
	Squark_t_2: "Squark_t_2",
	AntiSquark_t_2: "AntiSquark_t_2",
	Selectron_R: "Selectron_R",
	AntiSelectron_R: "AntiSelectron_R",
	Smuon_R: "Smuon_R",
	AntiSmuon_R: "AntiSmuon_R",
	Stau_2: "Stau_2",
	AntiStau_2: "AntiStau_2",
	Gluino: "Gluino",
	Neutralino1: "Neutralino1",
	Neutralino2: "Neutralino2",
	Chargino1Plus: "Chargino1Plus",
	AntiChargino1Plus: "AntiChargino1Plus",
	Neutralino3: "Neutralino3",
	Neutralino4: "Neutralino4",
	Chargino2Plus: "Chargino2Plus",
	AntiChargino2Plus: "AntiChargino2Plus",
	Gravitino: "Gravitino",
	TechniPiZero: "TechniPiZero",
	TechniPiPlus: "TechniPiPlus",
	AntiTechniPiPlus: "AntiTechniPiPlus",
	TechniPiPrimeZero: "TechniPiPrimeZero",
	TechniEtaZero: "TechniEtaZero",
	TechniRhoZero: "TechniRhoZero",
	TechniRhoPlus: "TechniRhoPlus",
	AntiTechniRhoPlus: "AntiTechniRhoPlus",
	TechniOmegaZero: "TechniOmegaZero",
	TechniV8: "TechniV8",
	TechniPi22_1: "TechniPi22_1",
	TechniPi22_8: "TechniPi22_8",
	TechniRho11: "TechniRho11",
	TechniRho12: "TechniRho12",
	TechniRho21: "TechniRho21",
	TechniRho22: "TechniRho22",
	RHadron_g_g: "RHadron_g_g",
	RHadron_g_dd_bar: "RHadron_g_dd_bar",
	RHadron_g_ud_bar_Plus: "RHadron_g_ud_bar_Plus",
	AntiRHadron_g_ud_bar_Plus: "AntiRHadron_g_ud_bar_Plus",
	RHadron_g_uu_bar: "RHadron_g_uu_bar",
	RHadron_g_ds_bar: "RHadron_g_ds_bar",
	AntiRHadron_g_ds_bar: "AntiRHadron_g_ds_bar",
	RHadron_g_us_bar_Plus: "RHadron_g_us_bar_Plus",
	AntiRHadron_g_us_bar_Plus: "AntiRHadron_g_us_bar_Plus",
	RHadron_g_ss_bar: "RHadron_g_ss_bar",
	RHadron_g_ddd: "RHadron_g_ddd",
	AntiRHadron_g_ddd: "AntiRHadron_g_ddd",
	RHadron_g_udd_Plus: "RHadron_g_udd_Plus",
	AntiRHadron_g_udd_Plus: "AntiRHadron_g_udd_Plus",
	RHadron_g_uud_PlusPlus: "RHadron_g_uud_PlusPlus",
	AntiRHadron_g_uud_PlusPlus: "AntiRHadron_g_uud_PlusPlus",
	RHadron_g_uuu_PlusPlus: "RHadron_g_uuu_PlusPlus",
	AntiRHadron_g_uuu_PlusPlus: "AntiRHadron_g_uuu_PlusPlus",
	RHadron_g_sdd: "RHadron_g_sdd",
	AntiRHadron_g_sdd: "AntiRHadron_g_sdd",
	RHadron_g_sud_Plus: "RHadron_g_sud_Plus",
	AntiRHadron_g_sud_Plus: "AntiRHadron_g_sud_Plus",
	RHadron_g_suu_PlusPlus: "RHadron_g_suu_PlusPlus",
	AntiRHadron_g_suu_PlusPlus: "AntiRHadron_g_suu_PlusPlus",
	RHadron_g_ssd_Plus: "RHadron_g_ssd_Plus",
	AntiRHadron_g_ssd_Plus: "AntiRHadron_g_ssd_Plus",
	RHadron_g_sss: "RHadron_g_sss",
	AntiRHadron_g_sss: "AntiRHadron_g_sss",
	RHadron_t1_t1_bar: "RHadron_t1_t1_bar",
	RHadron_t1_d_bar: "RHadron_t1_d_bar",
	AntiRHadron_t1_d_bar: "AntiRHadron_t1_d_bar",
	RHadron_t1_s_bar: "RHadron_t1_s_bar",
	AntiRHadron_t1_s_bar: "AntiRHadron_t1_s_bar",
	RHadron_t1_b_bar: "RHadron_t1_b_bar",
	AntiRHadron_t1_b_bar: "AntiRHadron_t1_b_bar",
	RHadron_t1_u_bar_Plus: "RHadron_t1_u_bar_Plus",
	AntiRHadron_t1_u_bar_Plus: "AntiRHadron_t1_u_bar_Plus",
	RHadron_t1_dd1: "RHadron_t1_dd1",
	AntiRHadron_t1_dd1: "AntiRHadron_t1_dd1",
	RHadron_t1_ud0_Plus: "RHadron_t1_ud0_Plus",
	AntiRHadron_t1_ud0_Plus: "AntiRHadron_t1_ud0_Plus",
	RHadron_t1_ud1_Plus: "RHadron_t1_ud1_Plus",
	AntiRHadron_t1_ud1_Plus: "AntiRHadron_t1_ud1_Plus",
	RHadron_t1_uu1_PlusPlus: "RHadron_t1_uu1_PlusPlus",
	AntiRHadron_t1_uu1_PlusPlus: "AntiRHadron_t1_uu1_PlusPlus",
	RHadron_t1_sd0: "RHadron_t1_sd0",
	AntiRHadron_t1_sd0: "AntiRHadron_t1_sd0",
	RHadron_t1_sd1: "RHadron_t1_sd1",
	AntiRHadron_t1_sd1: "AntiRHadron_t1_sd1",
	RHadron_t1_su0_Plus: "RHadron_t1_su0_Plus",
	AntiRHadron_t1_su0_Plus: "AntiRHadron_t1_su0_Plus",
	RHadron_t1_su1_Plus: "RHadron_t1_su1_Plus",
	AntiRHadron_t1_su1_Plus: "AntiRHadron_t1_su1_Plus",
	RHadron_t1_ss1: "RHadron_t1_ss1",
	AntiRHadron_t1_ss1: "AntiRHadron_t1_ss1",
	KaonLong: "KaonLong",
	KaonShort: "KaonShort",
	KaonZero: "KaonZero",
	AntiKaonZero: "AntiKaonZero",
	KaonPlus: "KaonPlus",
	AntiKaonPlus: "AntiKaonPlus",
	K0Star_800_Zero: "K0Star_800_Zero",
	AntiK0Star_800_Zero: "AntiK0Star_800_Zero",
	K0Star_800_Plus: "K0Star_800_Plus",
	AntiK0Star_800_Plus: "AntiK0Star_800_Plus",
	K0Star_1430_Zero: "K0Star_1430_Zero",
	AntiK0Star_1430_Zero: "AntiK0Star_1430_Zero",
	K0Star_1430_Plus: "K0Star_1430_Plus",
	AntiK0Star_1430_Plus: "AntiK0Star_1430_Plus",
	K_1460_Zero: "K_1460_Zero",
	AntiK_1460_Zero: "AntiK_1460_Zero",
	K_1460_Plus: "K_1460_Plus",
	AntiK_1460_Plus: "AntiK_1460_Plus",
	K_1830_Zero: "K_1830_Zero",
	AntiK_1830_Zero: "AntiK_1830_Zero",
	K_1830_Plus: "K_1830_Plus",
	AntiK_1830_Plus: "AntiK_1830_Plus",
	K0Star_1950_Zero: "K0Star_1950_Zero",
	AntiK0Star_1950_Zero: "AntiK0Star_1950_Zero",
	K0Star_1950_Plus: "K0Star_1950_Plus",
	AntiK0Star_1950_Plus: "AntiK0Star_1950_Plus",
	KStar_892_Zero: "KStar_892_Zero",
	AntiKStar_892_Zero: "AntiKStar_892_Zero",
	KStar_892_Plus: "KStar_892_Plus",
	AntiKStar_892_Plus: "AntiKStar_892_Plus",
	K1_1270_Zero: "K1_1270_Zero",
	AntiK1_1270_Zero: "AntiK1_1270_Zero",
	K1_1270_Plus: "K1_1270_Plus",
	AntiK1_1270_Plus: "AntiK1_1270_Plus",
	K1_1400_Zero: "K1_1400_Zero",
	AntiK1_1400_Zero: "AntiK1_1400_Zero",
	K1_1400_Plus: "K1_1400_Plus",
	AntiK1_1400_Plus: "AntiK1_1400_Plus",
	KStar_1410_Zero: "KStar_1410_Zero",
	AntiKStar_1410_Zero: "AntiKStar_1410_Zero",
	KStar_1410_Plus: "KStar_1410_Plus",
	AntiKStar_1410_Plus: "AntiKStar_1410_Plus",
	K1_1650_Zero: "K1_1650_Zero",
	AntiK1_1650_Zero: "AntiK1_1650_Zero",
	K1_1650_Plus: "K1_1650_Plus",
	AntiK1_1650_Plus: "AntiK1_1650_Plus",
	KStar_1680_Zero: "KStar_1680_Zero",
	AntiKStar_1680_Zero: "AntiKStar_1680_Zero",
	KStar_1680_Plus: "KStar_1680_Plus",
	AntiKStar_1680_Plus: "AntiKStar_1680_Plus",
	K2Star_1430_Zero: "K2Star_1430_Zero",
	AntiK2Star_1430_Zero: "AntiK2Star_1430_Zero",
	K2Star_1430_Plus: "K2Star_1430_Plus",
	AntiK2Star_1430_Plus: "AntiK2Star_1430_Plus",
	K2_1580_Zero: "K2_1580_Zero",
	AntiK2_1580_Zero: "AntiK2_1580_Zero",
	K2_1580_Plus: "K2_1580_Plus",
	AntiK2_1580_Plus: "AntiK2_1580_Plus",
	K2_1770_Zero: "K2_1770_Zero",
	AntiK2_1770_Zero: "AntiK2_1770_Zero",
	K2_1770_Plus: "K2_1770_Plus",
	AntiK2_1770_Plus: "AntiK2_1770_Plus",
	K2_1820_Zero: "K2_1820_Zero",
	AntiK2_1820_Zero: "AntiK2_1820_Zero",
	K2_1820_Plus: "K2_1820_Plus",
	AntiK2_1820_Plus: "AntiK2_1820_Plus",
	K2_1980_Zero: "K2_1980_Zero",
	AntiK2_1980_Zero: "AntiK2_1980_Zero",
	K2_1980_Plus: "K2_1980_Plus",
	AntiK2_1980_Plus: "AntiK2_1980_Plus",
	K2_2250_Zero: "K2_2250_Zero",
	AntiK2_2250_Zero: "AntiK2_2250_Zero",
	K2_2250_Plus: "K2_2250_Plus",
	AntiK2_2250_Plus: "AntiK2_2250_Plus",
	K3Star_1780_Zero: "K3Star_1780_Zero",
	AntiK3Star_1780_Zero: "AntiK3Star_1780_Zero",
	K3Star_1780_Plus: "K3Star_1780_Plus",
	AntiK3Star_1780_Plus: "AntiK3Star_1780_Plus",
	K3_2320_Zero: "K3_2320_Zero",
	AntiK3_2320_Zero: "AntiK3_2320_Zero",
	K3_2320_Plus: "K3_2320_Plus",
	AntiK3_2320_Plus: "AntiK3_2320_Plus",
	K4Star_2045_Zero: "K4Star_2045_Zero",
	AntiK4Star_2045_Zero: "AntiK4Star_2045_Zero",
	K4Star_2045_Plus: "K4Star_2045_Plus",
	AntiK4Star_2045_Plus: "AntiK4Star_2045_Plus",
	K4_2500_Zero: "K4_2500_Zero",
	AntiK4_2500_Zero: "AntiK4_2500_Zero",
	K4_2500_Plus: "K4_2500_Plus",
	AntiK4_2500_Plus: "AntiK4_2500_Plus",
	DPlus: "DPlus",
	AntiDPlus: "AntiDPlus",
	DZero: "DZero",
	AntiDZero: "AntiDZero",
	D0Star_2400_Plus: "D0Star_2400_Plus",
	AntiD0Star_2400_Plus: "AntiD0Star_2400_Plus",
	D0Star_2400_Zero: "D0Star_2400_Zero",
	AntiD0Star_2400_Zero: "AntiD0Star_2400_Zero",
	DStar_2010_Plus: "DStar_2010_Plus",
	AntiDStar_2010_Plus: "AntiDStar_2010_Plus",
	DStar_2007_Zero: "DStar_2007_Zero",
	AntiDStar_2007_Zero: "AntiDStar_2007_Zero",
	D1_2420_Plus: "D1_2420_Plus",
	AntiD1_2420_Plus: "AntiD1_2420_Plus",
	D1_2420_Zero: "D1_2420_Zero",
	AntiD1_2420_Zero: "AntiD1_2420_Zero",
	D1_H_Plus: "D1_H_Plus",
	AntiD1_H_Plus: "AntiD1_H_Plus",
	D1_2430_Zero: "D1_2430_Zero",
	AntiD1_2430_Zero: "AntiD1_2430_Zero",
	D2Star_2460_Plus: "D2Star_2460_Plus",
	AntiD2Star_2460_Plus: "AntiD2Star_2460_Plus",
	D2Star_2460_Zero: "D2Star_2460_Zero",
	AntiD2Star_2460_Zero: "AntiD2Star_2460_Zero",
	DsPlus: "DsPlus",
	AntiDsPlus: "AntiDsPlus",
	Ds0Star_2317_Plus: "Ds0Star_2317_Plus",
	AntiDs0Star_2317_Plus: "AntiDs0Star_2317_Plus",
	DsStarPlus: "DsStarPlus",
	AntiDsStarPlus: "AntiDsStarPlus",
	Ds1_2536_Plus: "Ds1_2536_Plus",
	AntiDs1_2536_Plus: "AntiDs1_2536_Plus",
	Ds1_2460_Plus: "Ds1_2460_Plus",
	AntiDs1_2460_Plus: "AntiDs1_2460_Plus",
	Ds2_2573_Plus: "Ds2_2573_Plus",
	AntiDs2_2573_Plus: "AntiDs2_2573_Plus",
	BZero: "BZero",
	AntiBZero: "AntiBZero",
	BPlus: "BPlus",
	AntiBPlus: "AntiBPlus",
	B0Star_Zero: "B0Star_Zero",
	AntiB0Star_Zero: "AntiB0Star_Zero",
	B0Star_Plus: "B0Star_Plus",
	AntiB0Star_Plus: "AntiB0Star_Plus",
	BStar_Zero: "BStar_Zero",
	AntiBStar_Zero: "AntiBStar_Zero",
	BStar_Plus: "BStar_Plus",
	AntiBStar_Plus: "AntiBStar_Plus",
	B1_L_Zero: "B1_L_Zero",
	AntiB1_L_Zero: "AntiB1_L_Zero",
	B1_L_Plus: "B1_L_Plus",
	AntiB1_L_Plus: "AntiB1_L_Plus",
	B1_H_Zero: "B1_H_Zero",
	AntiB1_H_Zero: "AntiB1_H_Zero",
	B1_H_Plus: "B1_H_Plus",
	AntiB1_H_Plus: "AntiB1_H_Plus",
	B2Star_Zero: "B2Star_Zero",
	AntiB2Star_Zero: "AntiB2Star_Zero",
	B2Star_Plus: "B2Star_Plus",
	AntiB2Star_Plus: "AntiB2Star_Plus",
	Bs_Zero: "Bs_Zero",
	AntiBs_Zero: "AntiBs_Zero",
	Bs0Star_Zero: "Bs0Star_Zero",
	AntiBs0Star_Zero: "AntiBs0Star_Zero",
	BsStar_Zero: "BsStar_Zero",
	AntiBsStar_Zero: "AntiBsStar_Zero",
	Bs1_L_Zero: "Bs1_L_Zero",
	AntiBs1_L_Zero: "AntiBs1_L_Zero",
	Bs1_H_Zero: "Bs1_H_Zero",
	AntiBs1_H_Zero: "AntiBs1_H_Zero",
	Bs2Star_Zero: "Bs2Star_Zero",
	AntiBs2Star_Zero: "AntiBs2Star_Zero",
	Bc_Plus: "Bc_Plus",
	AntiBc_Plus: "AntiBc_Plus",
	Bc0Star_Plus: "Bc0Star_Plus",
	AntiBc0Star_Plus: "AntiBc0Star_Plus",
	BcStar_Plus: "BcStar_Plus",
	AntiBcStar_Plus: "AntiBcStar_Plus",
	Bc1_L_Plus: "Bc1_L_Plus",
	AntiBc1_L_Plus: "AntiBc1_L_Plus",
	Bc1_H_Plus: "Bc1_H_Plus",
	AntiBc1_H_Plus: "AntiBc1_H_Plus",
	Bc2Star_Plus: "Bc2Star_Plus",
	AntiBc2Star_Plus: "AntiBc2Star_Plus",
	Eta_c_1S: "Eta_c_1S",
	Chi_c0_1P: "Chi_c0_1P",
	Eta_c_2S: "Eta_c_2S",
	J_psi_1S: "J_psi_1S",
	h_c_1P: "h_c_1P",
	Chi_c1_1P: "Chi_c1_1P",
	psi_2S: "psi_2S",
	psi_3770: "psi_3770",
	psi_4040: "psi_4040",
	psi_4160: "psi_4160",
	psi_4415: "psi_4415",
	Chi_c2_1P: "Chi_c2_1P",
	Chi_c2_2P: "Chi_c2_2P",
	Eta_b_1S: "Eta_b_1S",
	Chi_b0_1P: "Chi_b0_1P",
	Eta_b_2S: "Eta_b_2S",
	Chi_b0_2P: "Chi_b0_2P",
	Eta_b_3S: "Eta_b_3S",
	Chi_b0_3P: "Chi_b0_3P",
	Upsilon_1S: "Upsilon_1S",
	h_b_1P: "h_b_1P",
	Chi_b1_1P: "Chi_b1_1P",
	Upsilon1_1D: "Upsilon1_1D",
	Upsilon_2S: "Upsilon_2S",
	h_b_2P: "h_b_2P",
	Chi_b1_2P: "Chi_b1_2P",
	Upsilon1_2D: "Upsilon1_2D",
	Upsilon_3S: "Upsilon_3S",
	h_b_3P: "h_b_3P",
	Chi_b1_3P: "Chi_b1_3P",
	Upsilon_4S: "Upsilon_4S",
	Upsilon_10860: "Upsilon_10860",
	Upsilon_11020: "Upsilon_11020",
	Chi_b2_1P: "Chi_b2_1P",
	Eta_b2_1D: "Eta_b2_1D",
	Upsilon2_1D: "Upsilon2_1D",
	Chi_b2_2P: "Chi_b2_2P",
	Eta_b2_2D: "Eta_b2_2D",
	Upsilon2_2D: "Upsilon2_2D",
	Chi_b2_3P: "Chi_b2_3P",
	Upsilon3_1D: "Upsilon3_1D",
	Upsilon3_2D: "Upsilon3_2D",
	ThetaPlus: "ThetaPlus",
	AntiThetaPlus: "AntiThetaPlus",
	PhiMinusMinus: "PhiMinusMinus",
	AntiPhiMinusMinus: "AntiPhiMinusMinus",
	ExcitedDownQuark: "ExcitedDownQuark",
	ExcitedUpQuark: "ExcitedUpQuark",
	ExcitedElectron: "ExcitedElectron",
	ExcitedElectronNeutrino: "ExcitedElectronNeutrino",
	ExcitedAntiDownQuark: "ExcitedAntiDownQuark",
	ExcitedAntiUpQuark: "ExcitedAntiUpQuark",
	ExcitedPositron: "ExcitedPositron",
	ExcitedAntiElectronNeutrino: "ExcitedAntiElectronNeutrino",
	Graviton: "Graviton",
	RHadron: "RHadron",
	Leptoquark: "Leptoquark",
	Reggeon: "Reggeon",
	Pomeron: "Pomeron",
	Odderon: "Odderon",
	Deuteron: "Deuteron",
	AntiDeuteron: "AntiDeuteron",
	Triton: "Triton",
	AntiTriton: "AntiTriton",
	Helium3Nucleus: "Helium3Nucleus",
	AntiHelium3Nucleus: "AntiHelium3Nucleus",
	HeliumNucleus: "HeliumNucleus",
	AntiHeliumNucleus: "AntiHeliumNucleus",
	Lithium6Nucleus: "Lithium6Nucleus",
	AntiLithium6Nucleus: "AntiLithium6Nucleus",
	Lithium7Nucleus: "Lithium7Nucleus",
	AntiLithium7Nucleus: "AntiLithium7Nucleus",
	Beryllium7Nucleus: "Beryllium7Nucleus",
	AntiBeryllium7Nucleus: "AntiBeryllium7Nucleus",
	Beryllium9Nucleus: "Beryllium9Nucleus",
	AntiBeryllium9Nucleus: "AntiBeryllium9Nucleus",
	Boron10Nucleus: "Boron10Nucleus",
	AntiBoron10Nucleus: "AntiBoron10Nucleus",
	Boron11Nucleus: "Boron11Nucleus",
	AntiBoron11Nucleus: "AntiBoron11Nucleus",
	Carbon11Nucleus: "Carbon11Nucleus",
	AntiCarbon11Nucleus: "AntiCarbon11Nucleus",
	CarbonNucleus: "CarbonNucleus",
	AntiCarbonNucleus: "AntiCarbonNucleus",
	Nitrogen14Nucleus: "Nitrogen14Nucleus",
	AntiNitrogen14Nucleus: "AntiNitrogen14Nucleus",
	Oxygen15Nucleus: "Oxygen15Nucleus",
	AntiOxygen15Nucleus: "AntiOxygen15Nucleus",
	OxygenNucleus: "OxygenNucleus",
	AntiOxygenNucleus: "AntiOxygenNucleus",
}

// typesByName is the inverse of particleNames, used by codecs and CLI
// flags that accept a particle species by name rather than PDG code.
var typesByName = func() map[string]ParticleType {
	m := make(map[string]ParticleType, len(particleNames))
	for t, name := range particleNames {
		m[name] = t
	}
	return m
}()

// String returns the catalog name for t, or a numeric fallback of the
// form "PDG(<code>)" if t is not in the catalog.
func (t ParticleType) String() string {
	if name, ok := particleNames[t]; ok {
		return name
	}
	if t == Unsupported {
		return "Unsupported"
	}
	if t == PseudoParticle {
		return "PseudoParticle"
	}
	return fmt.Sprintf("PDG(%d)", int32(t))
}

// ByName looks up a ParticleType by its catalog name.
func ByName(name string) (ParticleType, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// ByPDGCode looks up a ParticleType by its raw PDG code. Every
// ParticleType value already is its PDG code, so this is a pass-through
// that documents intent at call sites decoding a wire-format integer.
func ByPDGCode(code int32) ParticleType { return ParticleType(code) }

// PDGCode returns the PDG Monte Carlo numbering scheme code for t.
func (t ParticleType) PDGCode() int32 { return int32(t) }

// Known reports whether t has a catalog entry.
func (t ParticleType) Known() bool {
	_, ok := particleNames[t]
	return ok
}
