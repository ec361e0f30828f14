package services

// Indian states and union territories inserted when the states table is empty.
var seedStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
	"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
	"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Andaman and Nicobar Islands", "Chandigarh", "Dadra and Nagar Haveli",
	"Daman and Diu", "Delhi", "Jammu and Kashmir", "Ladakh", "Lakshadweep", "Puducherry",
}

type seedCity struct {
	Name  string
	State string
}

var seedCities = []seedCity{
	{"Visakhapatnam", "Andhra Pradesh"},
	{"Vijayawada", "Andhra Pradesh"},
	{"Tirupati", "Andhra Pradesh"},
	{"Araku Valley", "Andhra Pradesh"},
	{"Lambasingi", "Andhra Pradesh"},
	{"Tawang", "Arunachal Pradesh"},
	{"Ziro", "Arunachal Pradesh"},
	{"Bomdila", "Arunachal Pradesh"},
	{"Itanagar", "Arunachal Pradesh"},
	{"Guwahati", "Assam"},
	{"Kaziranga", "Assam"},
	{"Jorhat", "Assam"},
	{"Majuli", "Assam"},
	{"Tezpur", "Assam"},
	{"Patna", "Bihar"},
	{"Gaya", "Bihar"},
	{"Nalanda", "Bihar"},
	{"Rajgir", "Bihar"},
	{"Raipur", "Chhattisgarh"},
	{"Jagdalpur", "Chhattisgarh"},
	{"Chitrakote", "Chhattisgarh"},
	{"Panaji", "Goa"},
	{"Calangute", "Goa"},
	{"Palolem", "Goa"},
	{"Baga", "Goa"},
	{"Candolim", "Goa"},
	{"Ahmedabad", "Gujarat"},
	{"Surat", "Gujarat"},
	{"Vadodara", "Gujarat"},
	{"Dwarka", "Gujarat"},
	{"Gir National Park", "Gujarat"},
	{"Somnath", "Gujarat"},
	{"Gurugram", "Haryana"},
	{"Kurukshetra", "Haryana"},
	{"Karnal", "Haryana"},
	{"Shimla", "Himachal Pradesh"},
	{"Manali", "Himachal Pradesh"},
	{"Dharamshala", "Himachal Pradesh"},
	{"McLeod Ganj", "Himachal Pradesh"},
	{"Kasol", "Himachal Pradesh"},
	{"Kasauli", "Himachal Pradesh"},
	{"Kufri", "Himachal Pradesh"},
	{"Spiti Valley", "Himachal Pradesh"},
	{"Ranchi", "Jharkhand"},
	{"Jamshedpur", "Jharkhand"},
	{"Deoghar", "Jharkhand"},
	{"Bengaluru", "Karnataka"},
	{"Mysuru", "Karnataka"},
	{"Hampi", "Karnataka"},
	{"Coorg", "Karnataka"},
	{"Chikmagalur", "Karnataka"},
	{"Gokarna", "Karnataka"},
	{"Udupi", "Karnataka"},
	{"Badami", "Karnataka"},
	{"Kochi", "Kerala"},
	{"Thiruvananthapuram", "Kerala"},
	{"Munnar", "Kerala"},
	{"Alappuzha", "Kerala"},
	{"Kumarakom", "Kerala"},
	{"Wayanad", "Kerala"},
	{"Varkala", "Kerala"},
	{"Bhopal", "Madhya Pradesh"},
	{"Indore", "Madhya Pradesh"},
	{"Khajuraho", "Madhya Pradesh"},
	{"Gwalior", "Madhya Pradesh"},
	{"Ujjain", "Madhya Pradesh"},
	{"Pachmarhi", "Madhya Pradesh"},
	{"Bandhavgarh", "Madhya Pradesh"},
	{"Mumbai", "Maharashtra"},
	{"Pune", "Maharashtra"},
	{"Aurangabad", "Maharashtra"},
	{"Nashik", "Maharashtra"},
	{"Lonavala", "Maharashtra"},
	{"Mahabaleshwar", "Maharashtra"},
	{"Alibaug", "Maharashtra"},
	{"Igatpuri", "Maharashtra"},
	{"Matheran", "Maharashtra"},
	{"Imphal", "Manipur"},
	{"Ukhrul", "Manipur"},
	{"Shillong", "Meghalaya"},
	{"Cherrapunji", "Meghalaya"},
	{"Mawlynnong", "Meghalaya"},
	{"Aizawl", "Mizoram"},
	{"Lunglei", "Mizoram"},
	{"Kohima", "Nagaland"},
	{"Dimapur", "Nagaland"},
	{"Mokokchung", "Nagaland"},
	{"Bhubaneswar", "Odisha"},
	{"Puri", "Odisha"},
	{"Cuttack", "Odisha"},
	{"Konark", "Odisha"},
	{"Amritsar", "Punjab"},
	{"Chandigarh", "Chandigarh"},
	{"Ludhiana", "Punjab"},
	{"Patiala", "Punjab"},
	{"Jaipur", "Rajasthan"},
	{"Udaipur", "Rajasthan"},
	{"Jaisalmer", "Rajasthan"},
	{"Jodhpur", "Rajasthan"},
	{"Mount Abu", "Rajasthan"},
	{"Pushkar", "Rajasthan"},
	{"Gangtok", "Sikkim"},
	{"Pelling", "Sikkim"},
	{"Lachung", "Sikkim"},
	{"Yuksom", "Sikkim"},
	{"Chennai", "Tamil Nadu"},
	{"Coimbatore", "Tamil Nadu"},
	{"Madurai", "Tamil Nadu"},
	{"Ooty", "Tamil Nadu"},
	{"Kodaikanal", "Tamil Nadu"},
	{"Kanyakumari", "Tamil Nadu"},
	{"Mahabalipuram", "Tamil Nadu"},
	{"Hyderabad", "Telangana"},
	{"Warangal", "Telangana"},
	{"Nizamabad", "Telangana"},
	{"Agartala", "Tripura"},
	{"Udaipur (Tripura)", "Tripura"},
	{"Lucknow", "Uttar Pradesh"},
	{"Varanasi", "Uttar Pradesh"},
	{"Agra", "Uttar Pradesh"},
	{"Prayagraj", "Uttar Pradesh"},
	{"Mathura", "Uttar Pradesh"},
	{"Ayodhya", "Uttar Pradesh"},
	{"Dehradun", "Uttarakhand"},
	{"Rishikesh", "Uttarakhand"},
	{"Nainital", "Uttarakhand"},
	{"Mussoorie", "Uttarakhand"},
	{"Haridwar", "Uttarakhand"},
	{"Auli", "Uttarakhand"},
	{"Kolkata", "West Bengal"},
	{"Darjeeling", "West Bengal"},
	{"Siliguri", "West Bengal"},
	{"Digha", "West Bengal"},
	{"Delhi", "Delhi"},
	{"Puducherry", "Puducherry"},
	{"Auroville", "Puducherry"},
	{"Port Blair", "Andaman and Nicobar Islands"},
	{"Havelock Island", "Andaman and Nicobar Islands"},
	{"Neil Island", "Andaman and Nicobar Islands"},
	{"Leh", "Ladakh"},
	{"Kargil", "Ladakh"},
}
