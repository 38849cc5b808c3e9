package crashcode

// Code tables transcribed from the CR-3 crash report instruction sheet.
// The unit-number reference fields (unit_num, unit_num_contributing,
// unit_num_charges, unit_num_disp) are deliberately absent: their values are
// compared textually for cross-section linking and must pass through as-is.

var roadwaySystem = map[string]string{
	"IH": "Interstate",
	"US": "US Highway",
	"SH": "State Highway",
	"FM": "Farm to Market",
	"RR": "Ranch Road",
	"RM": "Ranch to Market",
	"BI": "Business Interstate",
	"BU": "Business US",
	"BS": "Business State",
	"BF": "Business FM",
	"SL": "State Loop",
	"TL": "Toll Road",
	"AL": "Alternate",
	"SP": "Spur",
	"CR": "County Road",
	"PR": "Park Road",
	"PV": "Private Road",
	"RC": "Recreational Road",
	"LR": "Local Road/Street",
}

var roadwayPart = map[string]string{
	"1":  "Main/Proper Lane",
	"2":  "Service/Frontage Road",
	"3":  "Entrance/On Ramp",
	"4":  "Exit/Off Ramp",
	"5":  "Connector/Flyover",
	"98": "Other (Explain in Narrative)",
}

var direction = map[string]string{
	"N":  "North",
	"E":  "East",
	"S":  "South",
	"W":  "West",
	"NE": "Northeast",
	"SE": "Southeast",
	"SW": "Southwest",
	"NW": "Northwest",
}

var streetSuffix = map[string]string{
	"RD":   "Road",
	"ST":   "Street",
	"DR":   "Drive",
	"AVE":  "Avenue",
	"BLVD": "Boulevard",
	"PKWY": "Parkway",
	"LN":   "Lane",
	"FWY":  "Freeway",
	"HWY":  "Highway",
	"WAY":  "Way",
	"TRL":  "Trail",
	"LOOP": "Loop",
	"EXPY": "Expressway",
	"CT":   "Court",
	"CIR":  "Circle",
	"PL":   "Place",
	"PARK": "Park",
	"CV":   "Cove",
	"PATH": "Path",
	"TRC":  "Trace",
	"PT":   "Point",
}

var unitDescription = map[string]string{
	"1":  "Motor Vehicle",
	"2":  "Train",
	"3":  "Pedalcyclist",
	"4":  "Pedestrian",
	"5":  "Motorized Conveyance",
	"6":  "Towed/Pushed/Trailer",
	"7":  "Non-Contact",
	"98": "Other",
}

var vehicleColor = map[string]string{
	"BGE": "Beige",
	"BLK": "Black",
	"BLU": "Blue",
	"BRZ": "Bronze",
	"BRO": "Brown",
	"CAM": "Camouflage",
	"CPR": "Copper",
	"GLD": "Gold",
	"GRY": "Gray",
	"GRN": "Green",
	"MAR": "Maroon",
	"MUL": "Multicolored",
	"ONG": "Orange",
	"PNK": "Pink",
	"PLE": "Purple",
	"RED": "Red",
	"SIL": "Silver",
	"TAN": "Tan",
	"TEA": "Teal(green)",
	"TRQ": "Turquoise (blue)",
	"WHI": "White",
	"YEL": "Yellow",
	"98":  "Other",
	"99":  "Unknown",
}

var bodyStyle = map[string]string{
	"P2":  "Passenger Car, 2-Door",
	"P4":  "Passenger Car, 4-Door",
	"PK":  "Pickup",
	"AM":  "Ambulance",
	"BU":  "Bus",
	"SB":  "Yellow School Bus",
	"SBO": "School Bus Other",
	"FE":  "Farm Equipment",
	"FT":  "Fire Truck",
	"MC":  "Motorcycle",
	"PC":  "Police Car/Truck",
	"PM":  "Police Motorcycle",
	"TL":  "Trailer, Semi-Trailer, or Pole Trailer",
	"TR":  "Truck",
	"TT":  "Truck Tractor",
	"VN":  "Van",
	"EV":  "Neighborhood",
	"SV":  "Sport Utility Vehicle",
	"98":  "Other (Explain Vehicle in Narrative)",
	"99":  "Unknown",
}

var autonomousUnit = map[string]string{
	"1":  "Yes",
	"2":  "No",
	"99": "Unknown",
}

var autonomousLevel = map[string]string{
	"0":  "No Automation",
	"1":  "Driver Assistance",
	"2":  "Partial Automation",
	"3":  "Conditional Automation",
	"4":  "High Automation",
	"5":  "Full Automation",
	"6":  "Automation Level Unknown",
	"99": "Unknown",
}

var driverLicenseType = map[string]string{
	"1":  "Driver License",
	"2":  "Commercial Driver Lic.",
	"3":  "Occupational",
	"4":  "ID Card",
	"5":  "Unlicensed",
	"95": "Autonomous",
	"98": "Other",
	"99": "Unknown",
}

var driverLicenseClass = map[string]string{
	"A":  "Class A",
	"AM": "Class A and M",
	"B":  "Class B",
	"BM": "Class B and M",
	"C":  "Class C",
	"CM": "Class C and M",
	"M":  "Class M",
	"5":  "Unlicensed",
	"95": "Autonomous",
	"98": "Other/Out of State",
	"99": "Unknown",
}

var driverLicenseRestriction = map[string]string{
	"A":   "With corrective lenses",
	"B":   "LOFS 21 or over",
	"C":   "Daytime driving only",
	"D":   "Speed not to exceed 45 mph",
	"E":   "No manual transmission equipped CMV",
	"F":   "Must hold valid learner lic. to MM/DD/YY",
	"G":   "TRC 545.424 applies until MM/DD/YY",
	"H":   "Vehicle not to exceed 26,000 lbs GVWR",
	"I":   "MC not to exceed 250cc",
	"J":   "Licensed MC operator 21 or over in sight",
	"K":   "Intrastate only",
	"L":   "No air brake equipped CMV",
	"M":   "No Class A passenger vehicle",
	"N":   "No Class A and B passenger vehicle",
	"O":   "No tractor-trailer CMV",
	"Q":   "LOFS 21 or over vehicle above Class B",
	"R":   "LOFS 21 or over vehicle above Class C",
	"S":   "Outside rearview mirror or hearing aid",
	"T":   "Automatic transmission",
	"U":   "Applicable prosthetic devices",
	"V":   "Medical Variance",
	"W":   "Power steering",
	"X":   "No cargo in CMV tank vehicle",
	"Y":   "Valid TX vision or limb waiver required",
	"Z":   "No full air brake equipped CMV",
	"P1":  "For Class M TRC 545.424 until MM/DD/YY",
	"P2":  "To/from work/school",
	"P3":  "To/from work",
	"P4":  "To/from school",
	"P5":  "To/from work/school or LOFS 21 or over",
	"P6":  "To/from work or LOFS 21 or over",
	"P7":  "To/from school or LOFS 21 or over",
	"P8":  "With telescopic lens",
	"P9":  "LOFS 21 or over bus only",
	"P10": "LOFS 21 or over school bus only",
	"P11": "Bus not to exceed 26,000 lbs GVWR",
	"P12": "Passenger CMVs restrict to Class C only",
	"P13": "LOFS 21 or over in veh equip w/airbrake",
	"P14": "Operation Class B exempt veh authorized",
	"P15": "Operation Class A exempt veh authorized",
	"P16": "If CMV, school buses interstate",
	"P17": "If CMV, government vehicles interstate",
	"P18": "If CMV, only trans personal prop interstate",
	"P19": "If CMV, trans corpse/sick/injured interstate",
	"P20": "If CMV, privately trans passengers interstate",
	"P21": "If CMV, fire/rescue interstate",
	"P22": "If CMV, intra-city zone drivers interstate",
	"P23": "If CMV, custom-harvesting interstate",
	"P24": "If CMV, transporting bees/hives interstate",
	"P25": "If CMV, use in oil/water well service/drill",
	"P26": "If CMV, for operation of mobile crane",
	"P27": "HME Expiration Date MM/DD/YY",
	"P28": "FRSI CDL valid MM/DD/YY to MM/DD/YY",
	"P29": "FRSI CDL MM/DD/YY - MM/DD/YY or exempt B veh",
	"P30": "FRSI CDL MM/DD/YY - MM/DD/YY or exempt A veh",
	"P31": "Class C only - no taxi/bus/emergency veh",
	"P32": "Other",
	"P33": "No passengers in CMV bus",
	"P34": "No express or highway driving",
	"P35": "Restricted to operation of three-wheeled MC",
	"P36": "Moped",
	"P37": "Occ/Essent need DL-no CMV-see court order",
	"P38": "Applicable vehicle devices",
	"P39": "Ignition Interlock required",
	"P40": "Vehicle not to exceed Class C",
	"5":   "Unlicensed",
	"95":  "Autonomous",
	"96":  "None",
	"98":  "Other/Out of State",
	"99":  "Unknown",
}

var personType = map[string]string{
	"1":  "Driver",
	"2":  "Passenger/Occupant",
	"3":  "Pedalcyclist",
	"4":  "Pedestrian",
	"5":  "Driver of Motorcycle Type Vehicle",
	"6":  "Passenger/Occupant on Motorcycle Type Vehicle",
	"95": "Autonomous",
	"98": "Other (Explain in Narrative)",
	"99": "Unknown",
}

var seatPosition = map[string]string{
	"1":  "Front Left or Motorcycle Driver",
	"2":  "Front Center or Motorcycle Sidecar Passenger",
	"3":  "Front Right",
	"4":  "Second Seat Left or Motorcycle Back Passenger",
	"5":  "Second Seat Center",
	"6":  "Second Seat Right",
	"7":  "Third Seat Left",
	"8":  "Third Seat Center",
	"9":  "Third Seat Right",
	"10": "Cargo Area",
	"11": "Outside Vehicle",
	"13": "Other in Vehicle",
	"14": "Passenger in Bus",
	"16": "Pedestrian, Pedalcyclist, or Motorized Conveyance",
	"95": "Autonomous",
	"98": "Other (Explain in Narrative)",
	"99": "Unknown",
}

var injurySeverity = map[string]string{
	"A":  "Suspected Serious Injury",
	"B":  "Suspected Minor Injury",
	"C":  "Possible Injury",
	"K":  "Fatal Injury",
	"N":  "Not Injured",
	"95": "Autonomous",
	"99": "Unknown",
}

var ethnicity = map[string]string{
	"W":  "White",
	"B":  "Black",
	"H":  "Hispanic",
	"A":  "Asian",
	"I":  "Amer. Indian/Alaskan Native",
	"95": "Autonomous",
	"98": "Other",
	"99": "Unknown",
}

var sex = map[string]string{
	"1":  "Male",
	"2":  "Female",
	"95": "Autonomous",
	"99": "Unknown",
}

var ejected = map[string]string{
	"1":  "No",
	"2":  "Yes",
	"3":  "Yes, Partial",
	"97": "Not Applicable",
	"99": "Unknown",
}

var restraint = map[string]string{
	"1":  "Shoulder and Lap Belt",
	"2":  "Shoulder Belt Only",
	"3":  "Lap Belt Only",
	"4":  "Child Seat, Facing Forward",
	"5":  "Child Seat, Facing Rear",
	"6":  "Child Seat, Unknown",
	"7":  "Child Booster Seat",
	"96": "None",
	"97": "Not Applicable",
	"98": "Other (Explain in Narrative)",
	"99": "Unknown",
}

var airbag = map[string]string{
	"1":  "Not Deployed",
	"2":  "Deployed, Front",
	"3":  "Deployed, Side",
	"4":  "Deployed, Rear",
	"5":  "Deployed, Multiple",
	"97": "Not Applicable",
	"99": "Unknown",
}

var helmet = map[string]string{
	"1":  "Not Worn",
	"2":  "Worn, Damaged",
	"3":  "Worn, Not Damaged",
	"4":  "Worn, Unk. Damage",
	"97": "Not Applicable",
	"99": "Unknown if Worn",
}

var sobrietyOfLastDrink = map[string]string{
	"Y": "Solicit",
	"N": "No Solicit",
}

var substanceSpec = map[string]string{
	"1":  "Breath",
	"2":  "Blood",
	"3":  "Urine",
	"4":  "Refused",
	"96": "None",
	"98": "Other (Explain in Narrative)",
}

var substanceResult = map[string]string{
	"1":  "Positive",
	"2":  "Negative",
	"97": "Not Applicable",
	"99": "Unknown",
}

var drugCategory = map[string]string{
	"1":  "Liability Insurance Policy",
	"2":  "CNS Depressants",
	"3":  "CNS Stimulants",
	"4":  "Hallucinogens",
	"6":  "Narcotic Analgesics",
	"7":  "Inhalants",
	"8":  "Cannabis",
	"10": "Dissociative Anesthetics",
	"11": "Multiple Drugs (Explain in Narrative)",
	"97": "Not Applicable",
	"98": "Other Drugs (Explain in Narrative)",
	"99": "Unknown",
}

var financialResponsibility = map[string]string{
	"1": "Liability Insurance Policy",
	"2": "Proof of Liability Insurance",
	"3": "Insurance Binder",
	"4": "Surety Bond",
	"5": "Certificate of Deposit with Comptroller",
	"6": "Certificate of Deposit with County Judge",
	"7": "Certificate of Self-Insurance",
}

var vehicleDamageRating = map[string]string{
	"VB-1": "vehicle burned, NOT due to collision",
	"VB-7": "vehicle catches fire due to the collision",
	"TP-0": "top damage",
	"VX-0": "undercarriage damage",
	"MC-1": "motorcycle, moped, scooter, etc.",
	"NA":   "Not Applicable (Farm Tractor, etc.)",
}

var weatherCondition = map[string]string{
	"1":  "Clear",
	"2":  "Cloudy",
	"3":  "Rain",
	"4":  "Sleet/Hail",
	"5":  "Snow",
	"6":  "Fog",
	"7":  "Blowing Sand/Snow",
	"8":  "Severe Crosswinds",
	"98": "Other (Explain in Narrative)",
	"99": "Unknown",
}

var lightCondition = map[string]string{
	"1":  "Daylight",
	"2":  "Dark, Not Lighted",
	"3":  "Dark, Lighted",
	"4":  "Dark, Unknown Lighting",
	"5":  "Dawn",
	"6":  "Dusk",
	"98": "Other (Explain in Narrative)",
	"99": "Unknown",
}

var surfaceCondition = map[string]string{
	"1":  "Dry",
	"2":  "Wet",
	"3":  "Standing Water",
	"4":  "Snow",
	"5":  "Slush",
	"6":  "Ice",
	"7":  "Sand, Mud, Dirt",
	"98": "Other (Explain in Narrative)",
	"99": "Unknown",
}

var roadwayType = map[string]string{
	"1":  "Two-Way, Not Divided",
	"2":  "Two-Way, Divided, Unprotected Median",
	"3":  "Two-Way, Divided, Protected Median",
	"4":  "One-Way",
	"98": "Other (Explain in Narrative)",
}

var roadwayAlignment = map[string]string{
	"1":  "Straight, Level",
	"2":  "Straight, Grade",
	"3":  "Straight, Hillcrest",
	"4":  "Curve, Level",
	"5":  "Curve, Grade",
	"6":  "Curve, Hillcrest",
	"98": "Other (Explain in Narrative)",
	"99": "Unknown",
}

var enteringRoads = map[string]string{
	"2":  "Three Entering Roads – T",
	"3":  "Three Entering Roads – Y",
	"4":  "Four Entering Roads",
	"5":  "Five Entering Roads",
	"6":  "Six Entering Roads",
	"7":  "Traffic Circle",
	"8":  "Cloverleaf",
	"97": "Not Applicable",
	"98": "Other (Explain in Narrative)",
}

var trafficControl = map[string]string{
	"2":  "Inoperative (Explain in Narrative)",
	"3":  "Officer",
	"4":  "Flagman",
	"5":  "Signal Light",
	"6":  "Flashing Red Light",
	"7":  "Flashing Yellow Light",
	"8":  "Stop Sign",
	"9":  "Yield Sign",
	"10": "Warning Sign",
	"11": "Center Stripe/Divider",
	"12": "No Passing Zone",
	"13": "RR Gate/Signal",
	"15": "Crosswalk",
	"16": "Bike Lane",
	"17": "Marked Lanes",
	"18": "Signal Light With Red Light Running Camera",
	"96": "None",
	"98": "Other (Explain in Narrative)",
}

var contributingFactor = map[string]string{
	"1":  "Animal on Road - Domestic",
	"2":  "Animal on Road - Wild",
	"3":  "Backed without Safety",
	"4":  "Changed Lane when Unsafe",
	"14": "Disabled in Traffic Lane",
	"15": "Disregard Stop and Go Signal",
	"16": "Disregard Stop Sign or Light",
	"17": "Disregard Turn Marks at Intersection",
	"18": "Disregard Warning Sign at Construction",
	"19": "Distraction in Vehicle",
	"20": "Driver Inattention",
	"21": "Drove Without Headlights",
	"22": "Failed to Control Speed",
	"23": "Failed to Drive in Single Lane",
	"24": "Failed to Give Half of Roadway",
	"25": "Failed to Heed Warning Sign or Traffic Control Device",
	"26": "Failed to Pass to Left Safely",
	"27": "Failed to Pass to Right Safely",
	"28": "Failed to Signal or Gave Wrong Signal",
	"29": "Failed to Stop at Proper Place",
	"30": "Failed to Stop for School Bus",
	"31": "Failed to Stop for Train",
	"32": "Failed to Yield ROW - Emergency Vehicle",
	"33": "Failed to Yield ROW - Open Intersection",
	"34": "Failed to Yield ROW - Private Drive",
	"35": "Failed to Yield ROW - Stop Sign",
	"36": "Failed to Yield ROW - To Pedestrian",
	"37": "Failed to Yield ROW - Turning Left",
	"38": "Failed to Yield ROW - Turn on Red",
	"39": "Failed to Yield ROW - Yield Sign",
	"40": "Fatigued or Asleep",
	"41": "Faulty Evasive Action",
	"42": "Fire in Vehicle",
	"43": "Fleeing or Evading Police",
	"44": "Followed Too Closely",
	"45": "Had Been Drinking",
	"46": "Handicapped Driver (Explain in Narrative)",
	"47": "Ill (Explain in Narrative)",
	"48": "Impaired Visibility (Explain in Narrative)",
	"49": "Improper Start from a Stopped, Standing, or Parked Position",
	"50": "Load Not Secured",
	"51": "Opened Door Into Traffic Lane",
	"52": "Oversized Vehicle or Load",
	"53": "Overtake and Pass Insufficient Clearance",
	"54": "Parked and Failed to Set Brakes",
	"55": "Parked in Traffic Lane",
	"56": "Parked without Lights",
	"57": "Passed in No Passing Lane",
	"58": "Passed on Shoulder",
	"59": "Pedestrian FTYROW to Vehicle",
	"60": "Unsafe Speed",
	"61": "Speeding - (Over Limit)",
	"62": "Taking Medication (Explain in Narrative)",
	"63": "Turned Improperly - Cut Corner on Left",
	"64": "Turned Improperly - Wide Right",
	"65": "Turned Improperly - Wrong Lane",
	"66": "Turned when Unsafe",
	"67": "Intoxicated - Alcohol",
	"68": "Intoxicated - Drug",
	"69": "Wrong Side - Approach or Intersection",
	"70": "Wrong Side - Not Passing",
	"71": "Wrong Way - One Way Road",
	"73": "Road Rage",
	"74": "Cell/Mobile Device Use - Talking",
	"75": "Cell/Mobile Device Use - Texting",
	"76": "Cell/Mobile Device Use - Other",
	"77": "Cell/Mobile Device Use - Unknown",
	"78": "Failed to slow or move over for vehicles displaying emergency lights",
	"79": "Drove on improved shoulder",
	"98": "Other (Explain in Narrative)",
}
