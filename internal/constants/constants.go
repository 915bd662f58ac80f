package constants

const KBolzmann float64 = 1.380649e-23
const ElectronCharge = 1.602176634e-19                   // [C]
const ElectronMass float64 = 9.1093837015e-31            // [kg]
const FreeSpacePermittivityE0 float64 = 8.8541878128e-12 // [m^-3 kg^{-1} s^4 A^2]

const DeuteronMass float64 = 3.3435837768e-27 // [kg]
const TritonMass float64 = 5.0073567446e-27   // [kg]
const AlphaMass float64 = 6.6446573357e-27    // [kg]

const AlphaBirthEnergy float64 = 3.5e6 * ElectronCharge // [J]
const AlphaChargeNumber float64 = 2.

// lnL at the reference DT burn point (n_e ~ 10^20 m^-3, T ~ 10 keV),
// used whenever a scenario does not ask for the computed value.
const DefaultCoulombLog float64 = 17.
